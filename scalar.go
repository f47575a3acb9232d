// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"math/big"
)

// curveOrderBig is the order of the secp256k1 curve group, N.
var curveOrderBig = mustHexToBig(
	"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

// curveHalfOrderBig is N/2, used to determine whether a signature's S value
// needs to be negated to produce the canonical low-S form.
var curveHalfOrderBig = new(big.Int).Rsh(curveOrderBig, 1)

var curveOrderMinus2 = new(big.Int).Sub(curveOrderBig, big.NewInt(2))

// ModNScalar implements fixed-precision arithmetic over the secp256k1 group
// order N.  As with FieldVal, the representation here is a fully reduced
// big.Int rather than a limbed lazily-reduced form; every exported operation
// leaves the receiver correct modulo N.
type ModNScalar struct {
	val big.Int
}

func (s *ModNScalar) reduce() *ModNScalar {
	s.val.Mod(&s.val, curveOrderBig)
	return s
}

// Set sets s equal to the passed scalar.
func (s *ModNScalar) Set(val *ModNScalar) *ModNScalar {
	s.val.Set(&val.val)
	return s
}

// SetInt sets s to the passed small integer.
func (s *ModNScalar) SetInt(ui uint32) *ModNScalar {
	s.val.SetUint64(uint64(ui))
	return s
}

// SetByteSlice interprets the passed slice as a big-endian unsigned integer,
// reduces it modulo N, and sets s to the result.  Inputs wider than 32
// bytes (e.g. 48-byte hash-to-scalar candidates) are accepted and simply
// reduced.  It returns true when the value had to be reduced (i.e. it was
// >= N).
func (s *ModNScalar) SetByteSlice(b []byte) bool {
	s.val.SetBytes(b)
	overflows := s.val.Cmp(curveOrderBig) >= 0
	s.reduce()
	return overflows
}

// SetBytes interprets the passed 32-byte big-endian array and sets s to the
// resulting value reduced modulo N.
func (s *ModNScalar) SetBytes(b *[32]byte) bool {
	return s.SetByteSlice(b[:])
}

// SetHex decodes the passed big-endian hex string and sets s to the
// resulting value reduced modulo N.  It is only intended for hard-coded
// constants and test vectors.
func (s *ModNScalar) SetHex(str string) *ModNScalar {
	if len(str)%2 != 0 {
		str = "0" + str
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		panic("invalid hex constant: " + str)
	}
	s.SetByteSlice(b)
	return s
}

// String returns the scalar as a normalized human-readable hex string.
func (s ModNScalar) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}

// Bytes returns the scalar as a 32-byte big-endian array.
func (s *ModNScalar) Bytes() [32]byte {
	var out [32]byte
	s.PutBytes(&out)
	return out
}

// PutBytes stores the scalar as a 32-byte big-endian value in the passed
// array.
func (s *ModNScalar) PutBytes(b *[32]byte) {
	buf := s.val.Bytes()
	copy(b[32-len(buf):], buf)
	for i := 0; i < 32-len(buf); i++ {
		b[i] = 0
	}
}

// PutBytesUnchecked stores the scalar as a big-endian value in the passed
// slice, which must have a length of at least 32.
func (s *ModNScalar) PutBytesUnchecked(b []byte) {
	buf := s.val.Bytes()
	start := 32 - len(buf)
	for i := 0; i < start; i++ {
		b[i] = 0
	}
	copy(b[start:32], buf)
}

// Add adds the passed scalar to s modulo N.
func (s *ModNScalar) Add(val *ModNScalar) *ModNScalar {
	s.val.Add(&s.val, &val.val)
	return s.reduce()
}

// Add2 adds the two passed scalars together modulo N and stores the result
// in s.
func (s *ModNScalar) Add2(val, val2 *ModNScalar) *ModNScalar {
	s.val.Add(&val.val, &val2.val)
	return s.reduce()
}

// Mul multiplies s by the passed scalar modulo N.
func (s *ModNScalar) Mul(val *ModNScalar) *ModNScalar {
	s.val.Mul(&s.val, &val.val)
	return s.reduce()
}

// Mul2 multiplies the two passed scalars together modulo N and stores the
// result in s.
func (s *ModNScalar) Mul2(val, val2 *ModNScalar) *ModNScalar {
	s.val.Mul(&val.val, &val2.val)
	return s.reduce()
}

// Negate negates s modulo N.
func (s *ModNScalar) Negate() *ModNScalar {
	s.val.Sub(curveOrderBig, &s.val)
	return s.reduce()
}

// InverseValNonConst sets s to the modular multiplicative inverse of the
// passed scalar modulo N using Fermat's little theorem (val^(N-2) mod N).
// As with FieldVal.Inverse, the exponent N-2 is a fixed public constant, so
// the control flow big.Int's Exp takes over it does not branch on the
// secret scalar being inverted.
func (s *ModNScalar) InverseValNonConst(val *ModNScalar) *ModNScalar {
	if val.val.Sign() == 0 {
		s.val.SetUint64(0)
		return s
	}
	s.val.Exp(&val.val, curveOrderMinus2, curveOrderBig)
	return s
}

// IsZero returns whether or not s is equal to zero.
func (s *ModNScalar) IsZero() bool {
	return s.val.Sign() == 0
}

// IsOverHalfOrder returns whether or not s exceeds the half order of the
// group, N/2.  This determines whether an ECDSA signature's S value needs
// negating to reach the canonical low-S form.
func (s *ModNScalar) IsOverHalfOrder() bool {
	return s.val.Cmp(curveHalfOrderBig) > 0
}

// Equals returns whether or not the two scalars are the same.
func (s *ModNScalar) Equals(val *ModNScalar) bool {
	return s.val.Cmp(&val.val) == 0
}

// Zero sets s to zero, clearing out any previously held secret value.
func (s *ModNScalar) Zero() {
	s.val.SetUint64(0)
}
