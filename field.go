// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"math/big"
)

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//
// The secp256k1 field prime is P = 2^256 - 2^32 - 977, which is chosen
// specifically so that reduction modulo P can be performed quickly.  The
// FieldVal type below does not implement that limbed fast-reduction scheme
// directly; instead it keeps a single big.Int that is fully reduced into
// [0, P) after every exported operation.  Every exported method name and
// call pattern mirrors the limbed implementation this package is descended
// from so the curve and signature arithmetic built on top of it reads
// identically either way -- only the internal representation differs, which
// is explicitly permitted so long as every operation that escapes to a
// caller is correct modulo P.

var (
	fieldPrimeBig = mustHexToBig(
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	fieldPrimeMinus2 = new(big.Int).Sub(fieldPrimeBig, big.NewInt(2))

	// fieldSqrtExp is used for the P = 3 (mod 4) sqrt shortcut: r = x^((P+1)/4).
	fieldSqrtExp = new(big.Int).Rsh(new(big.Int).Add(fieldPrimeBig, big.NewInt(1)), 2)
)

// mustHexToBig converts the passed hex string into a big integer pointer and
// panics if the string is not valid hex.  It is only used for the hard-coded
// curve constants so a mistake in the source is caught immediately.
func mustHexToBig(s string) *big.Int {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex constant: " + s)
	}
	return new(big.Int).SetBytes(b)
}

// FieldVal implements big.Int-backed arithmetic modulo the secp256k1 field
// prime P = 2^256 - 2^32 - 977.  All of its methods return
// the receiver so calls may be chained in the same style as the rest of
// this package's arithmetic.
type FieldVal struct {
	val big.Int
}

// reduce brings f.val into canonical [0, P) form.  Every exported operation
// below calls this as its final step, so FieldVal is always left fully
// reduced and the magnitude bookkeeping the rest of this package's call
// sites pass around (e.g. Negate(3)) is accepted for API compatibility but
// otherwise unused: there is no lazily-accumulated magnitude to track.
func (f *FieldVal) reduce() *FieldVal {
	f.val.Mod(&f.val, fieldPrimeBig)
	return f
}

// Set sets f equal to the passed field value.
func (f *FieldVal) Set(val *FieldVal) *FieldVal {
	f.val.Set(&val.val)
	return f
}

// SetInt sets f to the passed small integer.
func (f *FieldVal) SetInt(ui uint16) *FieldVal {
	f.val.SetUint64(uint64(ui))
	return f
}

// SetBytes interprets the passed 32-byte big-endian array as an unsigned
// integer and sets f to the result after reducing it modulo P.
func (f *FieldVal) SetBytes(b *[32]byte) *FieldVal {
	f.val.SetBytes(b[:])
	return f.reduce()
}

// SetByteSlice interprets the passed slice as a big-endian unsigned
// integer, reduces it modulo P, and sets f to the result.  It returns true
// when the passed value was >= P (i.e. it overflowed and had to be
// reduced).  Slices wider than 32 bytes are accepted and treated as one
// large big-endian integer.
func (f *FieldVal) SetByteSlice(b []byte) bool {
	f.val.SetBytes(b)
	overflows := f.val.Cmp(fieldPrimeBig) >= 0
	f.reduce()
	return overflows
}

// SetHex decodes the passed big-endian hex string and sets f to the
// resulting value reduced modulo P.  Odd-length strings are padded with a
// leading zero.  It is only intended for hard-coded constants and test
// vectors.
func (f *FieldVal) SetHex(s string) *FieldVal {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex constant: " + s)
	}
	f.SetByteSlice(b)
	return f
}

// Normalize is a no-op for this representation since every operation already
// leaves f fully reduced, but it is kept so call sites written against the
// lazily-reduced limbed convention continue to read naturally.
func (f *FieldVal) Normalize() *FieldVal {
	return f.reduce()
}

// Bytes returns the field value as a 32-byte big-endian array.
func (f *FieldVal) Bytes() [32]byte {
	var out [32]byte
	f.PutBytes(&out)
	return out
}

// PutBytes stores the field value as a 32-byte big-endian value in the
// passed byte array.
func (f *FieldVal) PutBytes(b *[32]byte) {
	buf := f.val.Bytes()
	copy(b[32-len(buf):], buf)
	for i := 0; i < 32-len(buf); i++ {
		b[i] = 0
	}
}

// PutBytesUnchecked stores the field value as a big-endian value in the
// passed byte slice, which must have a length of at least 32.
func (f *FieldVal) PutBytesUnchecked(b []byte) {
	buf := f.val.Bytes()
	start := 32 - len(buf)
	for i := 0; i < start; i++ {
		b[i] = 0
	}
	copy(b[start:32], buf)
}

// Add adds the passed value to f and returns f to allow chaining.
func (f *FieldVal) Add(val *FieldVal) *FieldVal {
	f.val.Add(&f.val, &val.val)
	return f.reduce()
}

// Add2 adds the two passed field values together and stores the result in
// f.
func (f *FieldVal) Add2(val, val2 *FieldVal) *FieldVal {
	f.val.Add(&val.val, &val2.val)
	return f.reduce()
}

// AddInt adds the passed small integer to f.
func (f *FieldVal) AddInt(ui uint16) *FieldVal {
	f.val.Add(&f.val, big.NewInt(int64(ui)))
	return f.reduce()
}

// Negate sets f to its additive inverse modulo P.  magnitude is accepted for
// source-compatibility with the lazily-reduced limb convention this
// package's arithmetic was written against; it is unused here because f is
// always already fully reduced.
func (f *FieldVal) Negate(magnitude uint32) *FieldVal {
	f.val.Sub(fieldPrimeBig, &f.val)
	return f.reduce()
}

// Mul multiplies f by the passed value modulo P.
func (f *FieldVal) Mul(val *FieldVal) *FieldVal {
	f.val.Mul(&f.val, &val.val)
	return f.reduce()
}

// Mul2 multiplies the two passed values together modulo P and stores the
// result in f.
func (f *FieldVal) Mul2(val, val2 *FieldVal) *FieldVal {
	f.val.Mul(&val.val, &val2.val)
	return f.reduce()
}

// MulInt multiplies f by the passed small integer modulo P.
func (f *FieldVal) MulInt(val uint8) *FieldVal {
	f.val.Mul(&f.val, big.NewInt(int64(val)))
	return f.reduce()
}

// Square squares f modulo P.
func (f *FieldVal) Square() *FieldVal {
	f.val.Mul(&f.val, &f.val)
	return f.reduce()
}

// SquareVal squares the passed value modulo P and stores the result in f.
func (f *FieldVal) SquareVal(val *FieldVal) *FieldVal {
	f.val.Mul(&val.val, &val.val)
	return f.reduce()
}

// Inverse finds the modular multiplicative inverse of f modulo P via
// Fermat's little theorem (f^(P-2) mod P) and stores it in f.  The exponent
// is the public constant P-2, so the square-and-multiply control flow taken
// by big.Int's Exp depends only on that fixed public value and not on the
// secret field element being inverted.
func (f *FieldVal) Inverse() *FieldVal {
	if f.val.Sign() == 0 {
		return f
	}
	f.val.Exp(&f.val, fieldPrimeMinus2, fieldPrimeBig)
	return f
}

// InverseVal sets f to the modular multiplicative inverse of the passed
// value.
func (f *FieldVal) InverseVal(val *FieldVal) *FieldVal {
	f.Set(val)
	return f.Inverse()
}

// Sqrt sets f to a square root of f modulo P using the P = 3 (mod 4)
// shortcut r = f^((P+1)/4) and returns f.  Since both r and P-r are always
// square roots of a residue, callers are responsible for checking r*r == x
// and choosing the other root when a specific parity is required; see
// DecompressY.
func (f *FieldVal) Sqrt() *FieldVal {
	f.val.Exp(&f.val, fieldSqrtExp, fieldPrimeBig)
	return f
}

// SqrtVal sets f to a square root of the passed value; see Sqrt.
func (f *FieldVal) SqrtVal(val *FieldVal) *FieldVal {
	f.Set(val)
	return f.Sqrt()
}

// String returns the field value as a normalized human-readable hex string.
func (f FieldVal) String() string {
	b := f.Normalize().Bytes()
	return hex.EncodeToString(b[:])
}

// IsZero returns whether or not f is equal to zero.
func (f *FieldVal) IsZero() bool {
	return f.val.Sign() == 0
}

// IsOdd returns whether or not f is an odd value.
func (f *FieldVal) IsOdd() bool {
	return f.val.Bit(0) == 1
}

// IsOddBit returns 1 if f is odd or 0 otherwise as a uint32, which is
// convenient for building recovery codes and parity bytes without a
// conditional branch on the secret-adjacent value at the call site.
func (f *FieldVal) IsOddBit() uint32 {
	return uint32(f.val.Bit(0))
}

// Equals returns whether or not the two field values are the same.
func (f *FieldVal) Equals(val *FieldVal) bool {
	return f.val.Cmp(&val.val) == 0
}

// IsGtOrEqPrimeMinusOrder returns whether or not the field value exceeds or
// is equal to the difference between the field prime and the group order,
// which supports the ECDSA public key recovery overflow handling.
func (f *FieldVal) IsGtOrEqPrimeMinusOrder() bool {
	var rawSum big.Int
	rawSum.Add(&f.val, &orderAsFieldVal.val)
	return rawSum.Cmp(fieldPrimeBig) >= 0
}
