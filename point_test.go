// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	mrand "math/rand"
	"testing"
)

// affineEqual returns whether two Jacobian points represent the same affine
// point, converting both as needed.
func affineEqual(p1, p2 *JacobianPoint) bool {
	var a, b JacobianPoint
	a.Set(p1)
	b.Set(p2)
	a.ToAffine()
	b.ToAffine()
	return a.IsStrictlyEqual(&b)
}

// TestScalarBaseMultConsistency ensures the constant-time base point
// multiplication agrees with the variable-time implementation for boundary
// scalars and random values.
func TestScalarBaseMultConsistency(t *testing.T) {
	edgeCases := []struct {
		name string
		k    string // hex encoded scalar
	}{
		{"zero", "0"},
		{"one", "1"},
		{"two", "2"},
		{"fifteen (single full window)", "f"},
		{"sixteen (window carry)", "10"},
		{"alternating nibbles", "f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0"},
		{"group order - 2", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd036413f"},
		{"group order - 1", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"},
	}

	for _, test := range edgeCases {
		k := hexToModNScalar(test.k)
		var got, want JacobianPoint
		ScalarBaseMult(k, &got)
		ScalarBaseMultNonConst(k, &want)
		if !affineEqual(&got, &want) {
			t.Errorf("%s: mismatched result\ngot: (%v, %v, %v)\n"+
				"want: (%v, %v, %v)", test.name, got.X, got.Y, got.Z,
				want.X, want.Y, want.Z)
		}
	}

	seed := int64(7777)
	rng := mrand.New(mrand.NewSource(seed))
	for i := 0; i < 32; i++ {
		_, k := randIntAndModNScalar(t, rng)
		var got, want JacobianPoint
		ScalarBaseMult(k, &got)
		ScalarBaseMultNonConst(k, &want)
		if !affineEqual(&got, &want) {
			t.Fatalf("mismatched result for random scalar %v (seed %d)", k,
				seed)
		}
	}
}

// TestScalarMultConsistency ensures the constant-time variable-base
// multiplication agrees with the variable-time implementation for boundary
// scalars, the identity, and random scalar/point combinations.
func TestScalarMultConsistency(t *testing.T) {
	// An arbitrary point for the fixed cases: 5*G.
	var base JacobianPoint
	ScalarBaseMultNonConst(hexToModNScalar("5"), &base)
	base.ToAffine()

	edgeCases := []struct {
		name string
		k    string // hex encoded scalar
	}{
		{"zero", "0"},
		{"one", "1"},
		{"two", "2"},
		{"fifteen (single full window)", "f"},
		{"sixteen (window carry)", "10"},
		{"group order - 1", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"},
	}

	for _, test := range edgeCases {
		k := hexToModNScalar(test.k)
		var got, want JacobianPoint
		ScalarMult(k, &base, &got)
		ScalarMultNonConst(k, &base, &want)
		if !affineEqual(&got, &want) {
			t.Errorf("%s: mismatched result\ngot: (%v, %v, %v)\n"+
				"want: (%v, %v, %v)", test.name, got.X, got.Y, got.Z,
				want.X, want.Y, want.Z)
		}
	}

	// Multiplying the point at infinity by anything stays at infinity.
	var infinity, result JacobianPoint
	ScalarMult(hexToModNScalar("a5"), &infinity, &result)
	if !((result.X.IsZero() && result.Y.IsZero()) || result.Z.IsZero()) {
		t.Fatalf("k*infinity is not infinity: (%v, %v, %v)", result.X,
			result.Y, result.Z)
	}

	seed := int64(8888)
	rng := mrand.New(mrand.NewSource(seed))
	for i := 0; i < 16; i++ {
		_, k := randIntAndModNScalar(t, rng)
		_, d := randIntAndModNScalar(t, rng)

		var point JacobianPoint
		ScalarBaseMultNonConst(d, &point)
		point.ToAffine()

		var got, want JacobianPoint
		ScalarMult(k, &point, &got)
		ScalarMultNonConst(k, &point, &want)
		if !affineEqual(&got, &want) {
			t.Fatalf("mismatched result for random scalar %v (seed %d)", k,
				seed)
		}
	}
}

// TestConditionalSelect ensures the masked point selection picks the right
// candidate for both control values, including when the destination aliases
// one of the candidates.
func TestConditionalSelect(t *testing.T) {
	g := jacobianPointFromHex(
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		"1")
	var twoG JacobianPoint
	DoubleNonConst(&g, &twoG)

	var dst JacobianPoint
	dst.conditionalSelect(&g, &twoG, 0)
	if !dst.IsStrictlyEqual(&g) {
		t.Fatal("ctrl 0 did not select the first candidate")
	}
	dst.conditionalSelect(&g, &twoG, 1)
	if !dst.IsStrictlyEqual(&twoG) {
		t.Fatal("ctrl 1 did not select the second candidate")
	}

	// Aliased destination, as used by the table scan.
	dst.Set(&g)
	dst.conditionalSelect(&dst, &twoG, 0)
	if !dst.IsStrictlyEqual(&g) {
		t.Fatal("aliased ctrl 0 did not keep the destination")
	}
	dst.conditionalSelect(&dst, &twoG, 1)
	if !dst.IsStrictlyEqual(&twoG) {
		t.Fatal("aliased ctrl 1 did not select the second candidate")
	}
}

// TestCtUint32Eq ensures the branchless equality helper returns the
// expected masks across boundaries.
func TestCtUint32Eq(t *testing.T) {
	tests := []struct {
		x, y uint32
		want uint32
	}{
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{15, 15, 1},
		{0xffffffff, 0xffffffff, 1},
		{0xffffffff, 0, 0},
	}
	for _, test := range tests {
		if got := ctUint32Eq(test.x, test.y); got != test.want {
			t.Errorf("ctUint32Eq(%d, %d): got %d, want %d", test.x, test.y,
				got, test.want)
		}
	}
}
