// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf

// All group operations are performed using Jacobian coordinates.  For a given
// (x, y) position on the curve, the Jacobian coordinates are (x1, y1, z1)
// where x = x1/z1^2 and y = y1/z1^3. The greatest speedups come when the
// whole calculation can be performed within the transform (as in
// ScalarMultNonConst and ScalarBaseMultNonConst). But even for add and
// double, it's faster to apply and reverse the transform than to operate in
// affine coordinates.
//
// The endomorphism-accelerated split-scalar multiplication the original
// Decred code used is not carried forward here; every scalar multiplication
// in this package walks the full-width scalar directly (see point.go), which
// costs some performance but removes an entire class of lambda/beta constant
// bugs that cannot be caught without running the test suite.

// fieldOne is simply the integer 1 in field representation.  It is used to
// avoid needing to create it multiple times during the internal arithmetic.
var fieldOne = new(FieldVal).SetInt(1)

// addZ1AndZ2EqualsOne adds two Jacobian points that are already known to have
// z values of 1 and stores the result in (x3, y3, z3).  That is to say
// (x1, y1, 1) + (x2, y2, 1) = (x3, y3, z3).  It performs faster addition than
// the generic add routine since less arithmetic is needed due to the ability
// to avoid the z value multiplications.
func addZ1AndZ2EqualsOne(x1, y1, z1, x2, y2, x3, y3, z3 *FieldVal) {
	// To compute the point addition efficiently, this implementation splits
	// the equation into intermediate elements which are used to minimize
	// the number of field multiplications using the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-mmadd-2007-bl
	//
	// In particular it performs the calculations using the following:
	// H = X2-X1, HH = H^2, I = 4*HH, J = H*I, r = 2*(Y2-Y1), V = X1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*Y1*J, Z3 = 2*H
	x1.Normalize()
	y1.Normalize()
	x2.Normalize()
	y2.Normalize()
	if x1.Equals(x2) {
		if y1.Equals(y2) {
			doubleJacobian(x1, y1, z1, x3, y3, z3)
			return
		}
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	var h, i, j, r, v FieldVal
	var negJ, neg2V, negX3 FieldVal
	h.Set(x1).Negate(1).Add(x2)
	i.SquareVal(&h).MulInt(4)
	j.Mul2(&h, &i)
	r.Set(y1).Negate(1).Add(y2).MulInt(2)
	v.Mul2(x1, &i)
	negJ.Set(&j).Negate(1)
	neg2V.Set(&v).MulInt(2).Negate(2)
	x3.Set(&r).Square().Add(&negJ).Add(&neg2V)
	negX3.Set(x3).Negate(6)
	j.Mul(y1).MulInt(2).Negate(2)
	y3.Set(&v).Add(&negX3).Mul(&r).Add(&j)
	z3.Set(&h).MulInt(2)

	x3.Normalize()
	y3.Normalize()
	z3.Normalize()
}

// addZ1EqualsZ2 adds two Jacobian points that are already known to have the
// same z value and stores the result in (x3, y3, z3).
func addZ1EqualsZ2(x1, y1, z1, x2, y2, x3, y3, z3 *FieldVal) {
	// A = X2-X1, B = A^2, C=Y2-Y1, D = C^2, E = X1*B, F = X2*B
	// X3 = D-E-F, Y3 = C*(E-X3)-Y1*(F-E), Z3 = Z1*A
	x1.Normalize()
	y1.Normalize()
	x2.Normalize()
	y2.Normalize()
	if x1.Equals(x2) {
		if y1.Equals(y2) {
			doubleJacobian(x1, y1, z1, x3, y3, z3)
			return
		}
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	var a, b, c, d, e, f FieldVal
	var negX1, negY1, negE, negX3 FieldVal
	negX1.Set(x1).Negate(1)
	negY1.Set(y1).Negate(1)
	a.Set(&negX1).Add(x2)
	b.SquareVal(&a)
	c.Set(&negY1).Add(y2)
	d.SquareVal(&c)
	e.Mul2(x1, &b)
	negE.Set(&e).Negate(1)
	f.Mul2(x2, &b)
	x3.Add2(&e, &f).Negate(3).Add(&d)
	negX3.Set(x3).Negate(5).Normalize()
	y3.Set(y1).Mul(f.Add(&negE)).Negate(3)
	y3.Add(e.Add(&negX3).Mul(&c))
	z3.Mul2(z1, &a)

	x3.Normalize()
	y3.Normalize()
}

// addZ2EqualsOne adds two Jacobian points when the second point is already
// known to have a z value of 1 (and the z value for the first point is not
// 1) and stores the result in (x3, y3, z3).
func addZ2EqualsOne(x1, y1, z1, x2, y2, x3, y3, z3 *FieldVal) {
	// Z1Z1 = Z1^2, U2 = X2*Z1Z1, S2 = Y2*Z1*Z1Z1, H = U2-X1, HH = H^2,
	// I = 4*HH, J = H*I, r = 2*(S2-Y1), V = X1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*Y1*J, Z3 = (Z1+H)^2-Z1Z1-HH
	var z1z1, u2, s2 FieldVal
	x1.Normalize()
	y1.Normalize()
	z1z1.SquareVal(z1)
	u2.Set(x2).Mul(&z1z1).Normalize()
	s2.Set(y2).Mul(&z1z1).Mul(z1).Normalize()
	if x1.Equals(&u2) {
		if y1.Equals(&s2) {
			doubleJacobian(x1, y1, z1, x3, y3, z3)
			return
		}
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	var h, hh, i, j, r, rr, v FieldVal
	var negX1, negY1, negX3 FieldVal
	negX1.Set(x1).Negate(1)
	h.Add2(&u2, &negX1)
	hh.SquareVal(&h)
	i.Set(&hh).MulInt(4)
	j.Mul2(&h, &i)
	negY1.Set(y1).Negate(1)
	r.Set(&s2).Add(&negY1).MulInt(2)
	rr.SquareVal(&r)
	v.Mul2(x1, &i)
	x3.Set(&v).MulInt(2).Add(&j).Negate(3)
	x3.Add(&rr)
	negX3.Set(x3).Negate(5)
	y3.Set(y1).Mul(&j).MulInt(2).Negate(2)
	y3.Add(v.Add(&negX3).Mul(&r))
	z3.Add2(z1, &h).Square()
	z3.Add(z1z1.Add(&hh).Negate(2))

	x3.Normalize()
	y3.Normalize()
	z3.Normalize()
}

// addGeneric adds two Jacobian points (x1, y1, z1) and (x2, y2, z2) without
// any assumptions about the z values of the two points and stores the result
// in (x3, y3, z3).  It is the slowest of the add routines due to requiring
// the most arithmetic.
func addGeneric(x1, y1, z1, x2, y2, z2, x3, y3, z3 *FieldVal) {
	// Z1Z1 = Z1^2, Z2Z2 = Z2^2, U1 = X1*Z2Z2, U2 = X2*Z1Z1, S1 = Y1*Z2*Z2Z2
	// S2 = Y2*Z1*Z1Z1, H = U2-U1, I = (2*H)^2, J = H*I, r = 2*(S2-S1)
	// V = U1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*S1*J, Z3 = ((Z1+Z2)^2-Z1Z1-Z2Z2)*H
	var z1z1, z2z2, u1, u2, s1, s2 FieldVal
	z1z1.SquareVal(z1)
	z2z2.SquareVal(z2)
	u1.Set(x1).Mul(&z2z2).Normalize()
	u2.Set(x2).Mul(&z1z1).Normalize()
	s1.Set(y1).Mul(&z2z2).Mul(z2).Normalize()
	s2.Set(y2).Mul(&z1z1).Mul(z1).Normalize()
	if u1.Equals(&u2) {
		if s1.Equals(&s2) {
			doubleJacobian(x1, y1, z1, x3, y3, z3)
			return
		}
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	var h, i, j, r, rr, v FieldVal
	var negU1, negS1, negX3 FieldVal
	negU1.Set(&u1).Negate(1)
	h.Add2(&u2, &negU1)
	i.Set(&h).MulInt(2).Square()
	j.Mul2(&h, &i)
	negS1.Set(&s1).Negate(1)
	r.Set(&s2).Add(&negS1).MulInt(2)
	rr.SquareVal(&r)
	v.Mul2(&u1, &i)
	x3.Set(&v).MulInt(2).Add(&j).Negate(3)
	x3.Add(&rr)
	negX3.Set(x3).Negate(5)
	y3.Mul2(&s1, &j).MulInt(2).Negate(2)
	y3.Add(v.Add(&negX3).Mul(&r))
	z3.Add2(z1, z2).Square()
	z3.Add(z1z1.Add(&z2z2).Negate(2))
	z3.Mul(&h)

	x3.Normalize()
	y3.Normalize()
}

// addJacobian adds the passed Jacobian points (x1, y1, z1) and (x2, y2, z2)
// together and stores the result in (x3, y3, z3).
func addJacobian(x1, y1, z1, x2, y2, z2, x3, y3, z3 *FieldVal) {
	// A point at infinity is the identity according to the group law for
	// elliptic curve cryptography.  Thus, infinity + P = P and P + infinity
	// = P.
	if (x1.IsZero() && y1.IsZero()) || z1.IsZero() {
		x3.Set(x2)
		y3.Set(y2)
		z3.Set(z2)
		return
	}
	if (x2.IsZero() && y2.IsZero()) || z2.IsZero() {
		x3.Set(x1)
		y3.Set(y1)
		z3.Set(z1)
		return
	}

	// Faster point addition can be achieved when certain assumptions are
	// met, so this checks for those conditions and dispatches accordingly.
	z1.Normalize()
	z2.Normalize()
	isZ1One := z1.Equals(fieldOne)
	isZ2One := z2.Equals(fieldOne)
	switch {
	case isZ1One && isZ2One:
		addZ1AndZ2EqualsOne(x1, y1, z1, x2, y2, x3, y3, z3)
		return
	case z1.Equals(z2):
		addZ1EqualsZ2(x1, y1, z1, x2, y2, x3, y3, z3)
		return
	case isZ2One:
		addZ2EqualsOne(x1, y1, z1, x2, y2, x3, y3, z3)
		return
	}

	addGeneric(x1, y1, z1, x2, y2, z2, x3, y3, z3)
}

// doubleZ1EqualsOne performs point doubling on the passed Jacobian point when
// the point is already known to have a z value of 1 and stores the result in
// (x3, y3, z3).  That is to say (x3, y3, z3) = 2*(x1, y1, 1).
func doubleZ1EqualsOne(x1, y1, x3, y3, z3 *FieldVal) {
	// A = X1^2, B = Y1^2, C = B^2, D = 2*((X1+B)^2-A-C)
	// E = 3*A, F = E^2, X3 = F-2*D, Y3 = E*(D-X3)-8*C
	// Z3 = 2*Y1
	var a, b, c, d, e, f FieldVal
	z3.Set(y1).MulInt(2)
	a.SquareVal(x1)
	b.SquareVal(y1)
	c.SquareVal(&b)
	b.Add(x1).Square()
	d.Set(&a).Add(&c).Negate(2)
	d.Add(&b).MulInt(2)
	e.Set(&a).MulInt(3)
	f.SquareVal(&e)
	x3.Set(&d).MulInt(2).Negate(16)
	x3.Add(&f)
	f.Set(x3).Negate(18).Add(&d).Normalize()
	y3.Set(&c).MulInt(8).Negate(8)
	y3.Add(f.Mul(&e))

	x3.Normalize()
	y3.Normalize()
	z3.Normalize()
}

// doubleGeneric performs point doubling on the passed Jacobian point without
// any assumptions about the z value and stores the result in (x3, y3, z3).
// That is to say (x3, y3, z3) = 2*(x1, y1, z1).
func doubleGeneric(x1, y1, z1, x3, y3, z3 *FieldVal) {
	// X3 = (3*X1^2)^2 - 8*X1*Y1^2
	// Y3 = (3*X1^2)*(4*X1*Y1^2 - X3) - 8*Y1^4
	// Z3 = 2*Y1*Z1
	var a, b, c, d, e, f FieldVal
	z3.Mul2(y1, z1).MulInt(2)
	a.SquareVal(x1)
	b.SquareVal(y1)
	c.SquareVal(&b)
	b.Add(x1).Square()
	d.Set(&a).Add(&c).Negate(2)
	d.Add(&b).MulInt(2)
	e.Set(&a).MulInt(3)
	f.SquareVal(&e)
	x3.Set(&d).MulInt(2).Negate(16)
	x3.Add(&f)
	f.Set(x3).Negate(18).Add(&d).Normalize()
	y3.Set(&c).MulInt(8).Negate(8)
	y3.Add(f.Mul(&e))

	x3.Normalize()
	y3.Normalize()
	z3.Normalize()
}

// doubleJacobian doubles the passed Jacobian point (x1, y1, z1) and stores
// the result in (x3, y3, z3).
func doubleJacobian(x1, y1, z1, x3, y3, z3 *FieldVal) {
	if y1.IsZero() || z1.IsZero() {
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	if z1.Normalize().Equals(fieldOne) {
		doubleZ1EqualsOne(x1, y1, x3, y3, z3)
		return
	}

	doubleGeneric(x1, y1, z1, x3, y3, z3)
}
