// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fplib implements arbitrary-precision signed fixed-point arithmetic
in Q(i,f) format: a two's-complement integer of i+f bits representing the
real value limbs*2**(-f), with i integer bits (including the sign bit) and
f fractional bits.

Unlike a floating-point type, a Value carries no exponent: its format is
fixed at construction and every operation on it follows a deterministic
rule for the format of its result, so no rounding mode or accuracy flag is
ever needed. Values are immutable in spirit: arithmetic methods take their
operands by value and return a new Value rather than mutating a receiver.

	a := fplib.New(4, 12)        // Q(4,12), 16 bits wide, zero-valued
	b := fplib.New(4, 12)
	c := a.Add(b)                 // Q(5,12), one extra integer bit

Width-changing operations (ExtendLSBs, ExtendMSBs, RemoveLSBs, RemoveMSBs,
Reinterpret) let callers move bits between the integer and fractional
halves of a format, or drop bits outright; Extend preserves value,
Reinterpret does not, Remove drops bits and does not renormalize.

The package's bit-for-bit oracle lives in the reference subpackage: it
stores a value as a slice of bools instead of 32-bit limbs and implements
the same operations by the most literal algorithm available, so that the
fast engine here can be checked against it operation by operation. See
differential for the harness that runs both engines side by side.

Text forms on Value are limited to hexadecimal output (ToHexString, see
codec.go) and the "<intBits>,<fracBits>,<hex>" text marshalling in
value_marsh.go. Hexadecimal and binary import, binary output and
display-only decimal output are provided by reference.Ref.
*/
package fplib
