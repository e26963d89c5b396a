package morton

/*

# Motivation

A Morton code (Z-order curve key) interleaves the bits of 3 integer
coordinates into a single word so that keys which are close on the curve are
close numerically. This makes a plain sorted structure (or a flat array of
octree cells) behave like a spatial index: cells that are neighbours in space
tend to be neighbours in storage.

The thing this package exists for is the observation that you never need to
decode. Stepping a cell one unit along a single axis can be done *directly on
the packed word*, in a constant number of instructions, regardless of how
many levels deep the code is. An octree built on top of this only ever deals
in packed words.

# Bit layout

The word is partitioned, least significant bit up, into 'levels' of 3 bits.
Level i holds one bit for each axis, x at local offset 0, y at 1, z at 2.
The single most significant bit is reserved as a flag, orthogonal to the
coordinate payload (callers typically use it to mark a cell occupied, dirty,
or whatever else a single bit buys them).

For a 64 bit word that gives 21 usable levels:

	bit 63                                                       bit 0
	  f zyx zyx zyx zyx zyx zyx zyx zyx zyx ... zyx zyx zyx zyx zyx
	    20  19  18  17  16  15  14  13  12      4   3   2   1   0   level

A 32 bit word gives 10 levels, with one spare bit left unused between the
payload and the flag so the layout stays compatible with the 64 bit variant:

	bit 31                              bit 0
	  f s zyx zyx zyx zyx ... zyx zyx zyx
	      9   8   7   6       2   1   0

Each axis's bits, viewed on their own, form a 'dilated integer': a counter
whose digits occupy every third bit position. The per axis masks selecting
those positions have the closed form (8^levels - 1)/7, which is the binary
pattern 001 repeated, shifted left by 0, 1 or 2 for x, y and z.

# Stepping one axis: carry confinement

Adding 1 to a dilated integer in place looks like it needs a per level loop,
but it does not. To increase axis a with mask m:

	((v | ^m) + 1) & m  |  (v &^ m)

Setting every *foreign* bit to 1 first means the carry produced by the +1
ripples straight through the foreign positions (which are about to be masked
away anyway) and stops at the next bit that actually belongs to the axis,
where ordinary binary carry does the right thing. Decrease is the mirror
image: zero the foreign bits so the borrow rips through them instead,

	((v & m) - 1) & m  |  (v &^ m)

Both are unchecked word arithmetic. If the axis is already saturated (all
ones on increase, all zeros on decrease) the result wraps modulo the axis's
capacity rather than failing. As with the rest of this package the burden of
knowledge sits with the caller: an octree walking within its own bounds
never steps past them, and checking would put a branch and an error path in
front of callers that cannot hit it.

# Scope

Deliberately not here: encoding an (x, y, z) triple into a code, decoding
one back out, and curve range queries. Those belong to whatever sits on top;
this package is only the packed representation and the axis arithmetic, so
that the layer above can be built without ever materialising coordinates.

# Sources & background

* Raman & Wise, Converting to and from Dilated Integers,
  https://www.cs.indiana.edu/~dswise/Arcee/castingDilated-comb.pdf
* https://fgiesen.wordpress.com/2009/12/13/decoding-morton-codes/
* https://en.wikipedia.org/wiki/Z-order_curve
* http://asgerhoedt.dk/?p=276 has a good walk through of morton encoding
  for octrees
* https://github.com/Forceflow/libmorton collects the standard encode and
  decode techniques that would sit in the layer above this one

*/
