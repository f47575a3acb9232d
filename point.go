// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "sync"

// JacobianPoint is an element of the secp256k1 group represented in
// Jacobian projective coordinates such that the affine point it represents
// is (X/Z^2, Y/Z^3).  The point at infinity is represented with X = Y = Z =
// 0, matching the convention used throughout curve.go.
type JacobianPoint struct {
	X, Y, Z FieldVal
}

// Set sets p equal to the passed point.
func (p *JacobianPoint) Set(other *JacobianPoint) *JacobianPoint {
	p.X.Set(&other.X)
	p.Y.Set(&other.Y)
	p.Z.Set(&other.Z)
	return p
}

// ToAffine converts p to affine coordinates (Z = 1) in place.  This is a
// no-op when p is already affine.
func (p *JacobianPoint) ToAffine() {
	if p.Z.Normalize().Equals(fieldOne) {
		p.X.Normalize()
		p.Y.Normalize()
		return
	}

	var zInv, tempZ FieldVal
	zInv.Set(&p.Z).Inverse()
	tempZ.SquareVal(&zInv)

	p.X.Mul(&tempZ)
	p.Y.Mul(tempZ.Mul(&zInv))
	p.Z.SetInt(1)

	p.X.Normalize()
	p.Y.Normalize()
}

// AddNonConst adds the passed Jacobian points together and stores the
// result in result.  The name matches the upstream convention that the
// group addition itself is not hardened against timing side-channels: its
// internal dispatch branches on the shape of its operands.  Callers with
// secret-derived operands must only reach it through ScalarBaseMult and
// ScalarMult, which arrange for the operands to never take
// secret-dependent shapes.
func AddNonConst(p1, p2, result *JacobianPoint) {
	addJacobian(&p1.X, &p1.Y, &p1.Z, &p2.X, &p2.Y, &p2.Z, &result.X, &result.Y, &result.Z)
}

// DoubleNonConst doubles the passed Jacobian point and stores the result in
// result.
func DoubleNonConst(p, result *JacobianPoint) {
	doubleJacobian(&p.X, &p.Y, &p.Z, &result.X, &result.Y, &result.Z)
}

// fieldB is the secp256k1 curve equation's constant term: y^2 = x^3 + 7.
var fieldB = new(FieldVal).SetInt(7)

// isOnCurve returns whether or not the affine point (x, y) satisfies the
// secp256k1 curve equation y^2 = x^3 + 7.
func isOnCurve(x, y *FieldVal) bool {
	var y2, x3PlusB FieldVal
	y2.SquareVal(y).Normalize()
	x3PlusB.SquareVal(x).Mul(x).Add(fieldB).Normalize()
	return y2.Equals(&x3PlusB)
}

// DecompressY attempts to calculate the y coordinate for the given x
// coordinate such that the result pair is a point on the secp256k1 curve and
// stores it in resultY.  It returns whether or not the calculation was
// successful since not all x coordinates correspond to a point on the curve.
// When odd is true the returned y coordinate is normalized to be odd,
// otherwise it is normalized to be even.
func DecompressY(x *FieldVal, odd bool, resultY *FieldVal) bool {
	var x3PlusB FieldVal
	x3PlusB.SquareVal(x).Mul(x).Add(fieldB)

	var y, y2 FieldVal
	y.SqrtVal(&x3PlusB).Normalize()
	y2.SquareVal(&y).Normalize()
	if !y2.Equals(x3PlusB.Normalize()) {
		return false
	}

	if y.IsOdd() != odd {
		y.Negate(1)
	}
	resultY.Set(y.Normalize())
	return true
}

// basePointDoublings holds 2^i*G for i in [0, 256) so that base-point scalar
// multiplication only needs additions instead of a doubling per bit.  It is
// computed once on first use instead of being hard-coded, since a runtime
// computed table can be verified by direct computation from the generator
// rather than trusted as an opaque hard-coded blob.
//
// basePointWindows holds, for each 4-bit window i in [0, 64), the multiples
// [1, 15] * 16^i * G.  It drives the constant-time ScalarBaseMult: looking
// up the entry for a window's digit scans the whole sub-table and blends
// with a mask, so the access pattern is the same for every digit.
//
// negGenerator is -G and negBlindOffset is -(2^252 * G); both cancel the
// blinding value the constant-time multiplication routines fold into their
// accumulators.
var (
	basePointDoublings     [256]JacobianPoint
	basePointWindows       [64][15]JacobianPoint
	negGenerator           JacobianPoint
	negBlindOffset         JacobianPoint
	basePointPrecomputeOne sync.Once
)

func precomputeBasePointDoublings() {
	basePointDoublings[0].X.SetHex(
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	basePointDoublings[0].Y.SetHex(
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	basePointDoublings[0].Z.SetInt(1)
	for i := 1; i < len(basePointDoublings); i++ {
		DoubleNonConst(&basePointDoublings[i-1], &basePointDoublings[i])
	}

	for i := 0; i < len(basePointWindows); i++ {
		windowBase := &basePointDoublings[4*i]
		basePointWindows[i][0].Set(windowBase)
		for j := 1; j < len(basePointWindows[i]); j++ {
			AddNonConst(&basePointWindows[i][j-1], windowBase,
				&basePointWindows[i][j])
		}
	}

	negGenerator.Set(&basePointDoublings[0])
	negGenerator.Y.Negate(1).Normalize()
	negBlindOffset.Set(&basePointDoublings[252])
	negBlindOffset.Y.Negate(1).Normalize()
}

// Precompute forces the generation of the tables used to accelerate scalar
// multiplication.  Calling it eagerly (e.g. at program start) avoids paying
// the one-time cost during the first signature operation; it is safe, and
// unnecessary, to call more than once.
func Precompute() {
	basePointPrecomputeOne.Do(precomputeBasePointDoublings)
}

// ctUint32Eq returns 1 when x equals y and 0 otherwise, without branching
// on either value.
func ctUint32Eq(x, y uint32) uint32 {
	return uint32((uint64(x^y) - 1) >> 63)
}

// conditionalSelect sets p to a when ctrl is 0 and to b when ctrl is 1.
// Both candidates are serialized and blended in full either way, so neither
// the control flow nor the memory access pattern depends on ctrl.
func (p *JacobianPoint) conditionalSelect(a, b *JacobianPoint, ctrl uint32) {
	mask := byte(0 - ctrl)
	var aBuf, bBuf [3][32]byte
	a.X.PutBytes(&aBuf[0])
	a.Y.PutBytes(&aBuf[1])
	a.Z.PutBytes(&aBuf[2])
	b.X.PutBytes(&bBuf[0])
	b.Y.PutBytes(&bBuf[1])
	b.Z.PutBytes(&bBuf[2])
	for c := 0; c < 3; c++ {
		for i := 0; i < 32; i++ {
			aBuf[c][i] ^= mask & (aBuf[c][i] ^ bBuf[c][i])
		}
	}
	p.X.SetBytes(&aBuf[0])
	p.Y.SetBytes(&aBuf[1])
	p.Z.SetBytes(&aBuf[2])
	for c := range aBuf {
		zeroArray32(&aBuf[c])
		zeroArray32(&bBuf[c])
	}
}

// selectAndAdd sets acc = acc + digit*table-entry for digit in [0, 15],
// where tbl holds the multiples [1, 15] of some point.  Every table entry
// is scanned and blended with an equality mask, the group addition is
// always computed, and the result is kept or discarded with another mask,
// so the digit influences neither the branches taken nor the memory
// touched.  The accumulator must not be the point at infinity; the
// constant-time multiplication routines guarantee that by blinding it.
func selectAndAdd(acc *JacobianPoint, tbl *[15]JacobianPoint, digit uint32) {
	var entry, sum JacobianPoint
	entry.Set(&tbl[0])
	for j := uint32(1); j < 16; j++ {
		entry.conditionalSelect(&entry, &tbl[j-1], ctUint32Eq(j, digit))
	}
	AddNonConst(acc, &entry, &sum)
	acc.conditionalSelect(acc, &sum, 1-ctUint32Eq(digit, 0))
}

// ScalarBaseMult multiplies k by the curve's base point G and stores the
// result in result.  In contrast to ScalarBaseMultNonConst, it is safe for
// secret scalars: each 4-bit window of k is resolved by scanning the whole
// precomputed sub-table for that window and blending with a mask, and a
// dummy addition is performed and discarded for zero windows, so the
// control flow and memory access pattern do not depend on the bits of k.
//
// The accumulator starts at G rather than the identity so it never holds
// the point at infinity while secret windows are processed, which keeps the
// underlying addition from taking an operand-shape branch the scalar could
// influence; the extra G is removed after the final window.
func ScalarBaseMult(k *ModNScalar, result *JacobianPoint) {
	Precompute()

	kBytes := k.Bytes()

	var acc JacobianPoint
	acc.Set(&basePointDoublings[0])
	for i := 0; i < 64; i++ {
		digit := uint32(kBytes[31-i/2]>>(4*(i&1))) & 0xf
		selectAndAdd(&acc, &basePointWindows[i], digit)
	}

	// The addition normalizes its operands in place, so hand it a copy
	// rather than the shared correction constant.
	var negBlind JacobianPoint
	negBlind.Set(&negGenerator)
	AddNonConst(&acc, &negBlind, result)
	zeroArray32(&kBytes)
}

// ScalarMult multiplies k by the passed point and stores the result in
// result.  In contrast to ScalarMultNonConst, it is safe for secret
// scalars: it walks k in 4-bit windows from the most significant nibble
// down, with a per-call table of the multiples [1, 15] of the point that is
// scanned in full for every window, and a dummy addition that is discarded
// with a mask for zero windows.  The accumulator is blinded with G before
// the first window and the accumulated 2^252*G is removed at the end, for
// the same reason as in ScalarBaseMult.
func ScalarMult(k *ModNScalar, point, result *JacobianPoint) {
	Precompute()

	// Precompute the multiples [1, 15] of the point.  Building the odd
	// entries by doubling halves the number of additions.
	var tbl [15]JacobianPoint
	tbl[0].Set(point)
	for i := 1; i < len(tbl); i += 2 {
		DoubleNonConst(&tbl[i/2], &tbl[i])
		AddNonConst(&tbl[i], point, &tbl[i+1])
	}

	kBytes := k.Bytes()

	var acc JacobianPoint
	acc.Set(&basePointDoublings[0])
	for i := 0; i < 32; i++ {
		if i != 0 {
			DoubleNonConst(&acc, &acc)
			DoubleNonConst(&acc, &acc)
			DoubleNonConst(&acc, &acc)
			DoubleNonConst(&acc, &acc)
		}
		selectAndAdd(&acc, &tbl, uint32(kBytes[i]>>4))

		DoubleNonConst(&acc, &acc)
		DoubleNonConst(&acc, &acc)
		DoubleNonConst(&acc, &acc)
		DoubleNonConst(&acc, &acc)
		selectAndAdd(&acc, &tbl, uint32(kBytes[i]&0xf))
	}

	// As in ScalarBaseMult, hand the addition a copy of the shared
	// correction constant.
	var negBlind JacobianPoint
	negBlind.Set(&negBlindOffset)
	AddNonConst(&acc, &negBlind, result)
	zeroArray32(&kBytes)
}

// ScalarBaseMultNonConst multiplies k by the curve's base point G and stores
// the result in result in variable time.  It must only be used when k is
// public, such as during signature verification and public key recovery;
// secret scalars go through ScalarBaseMult instead.
func ScalarBaseMultNonConst(k *ModNScalar, result *JacobianPoint) {
	Precompute()

	var q, diff JacobianPoint
	kBytes := k.Bytes()
	for i := 0; i < 256; i++ {
		byteIdx := i / 8
		bitIdx := uint(7 - i%8)
		if (kBytes[byteIdx]>>bitIdx)&1 == 1 {
			// The addition normalizes its operands in place, so work on a
			// copy rather than the shared table entry.
			diff.Set(&basePointDoublings[255-i])
			AddNonConst(&q, &diff, &q)
		}
	}
	result.Set(&q)
}

// ScalarMultNonConst multiplies k by the passed point and stores the result
// in result in variable time.  As with ScalarBaseMultNonConst, it must only
// be used when k is public.
func ScalarMultNonConst(k *ModNScalar, point, result *JacobianPoint) {
	var q JacobianPoint
	kBytes := k.Bytes()
	for i := 0; i < 256; i++ {
		DoubleNonConst(&q, &q)
		byteIdx := i / 8
		bitIdx := uint(7 - i%8)
		if (kBytes[byteIdx]>>bitIdx)&1 == 1 {
			AddNonConst(&q, point, &q)
		}
	}
	result.Set(&q)
}
