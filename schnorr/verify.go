// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import "pragmacrypt.dev/secp256k1"

// Verify reports whether sig is a valid BIP 340 Schnorr signature over msg
// (which must be exactly 32 bytes) for the x-only public key pubKey
// (32 bytes, SEC1/BIP340 form), following the steps in [BIP340] Verify:
//
//  1. Lift pubKey to a point P with even y; fail if it is not on the curve.
//  2. Fail if r >= field prime or s >= group order (done during parsing).
//  3. e = taggedHash("BIP0340/challenge", x(R) || x(P) || msg) mod n.
//  4. R = s*G - e*P; fail if R is the point at infinity, if R.y is odd, or
//     if x(R) != r.
func Verify(sig *Signature, msg []byte, pubKey []byte) (bool, error) {
	if len(msg) != scalarSize {
		return false, signatureError(ErrInvalidMsgSize, "message must be 32 bytes")
	}

	pub, err := ParsePubKey(pubKey)
	if err != nil {
		return false, err
	}

	r := sig.r
	var rBytes [32]byte
	r.Normalize().PutBytesUnchecked(rBytes[:])

	var xP [32]byte
	copy(xP[:], pubKey)

	e := challengeScalar(rBytes[:], xP[:], msg)

	// R = s*G - e*P = s*G + (-e*P).
	var sG, eP, pj, negEP, rPoint secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&sig.s, &sG)
	pub.AsJacobian(&pj)
	secp256k1.ScalarMultNonConst(&e, &pj, &eP)

	negEP.Set(&eP)
	negEP.Y.Negate(1).Normalize()

	secp256k1.AddNonConst(&sG, &negEP, &rPoint)
	rPoint.ToAffine()

	if rPoint.X.IsZero() && rPoint.Y.IsZero() {
		return false, nil
	}
	if rPoint.Y.IsOdd() {
		return false, nil
	}
	if !rPoint.X.Equals(&r) {
		return false, nil
	}
	return true, nil
}
