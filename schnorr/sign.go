// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"fmt"

	"pragmacrypt.dev/secp256k1"
)

// References:
//   [BIP340]: Schnorr Signatures for secp256k1
//     https://github.com/bitcoin/bips/blob/master/bip-0340.mediawiki

const (
	// scalarSize is the size of an encoded big-endian scalar or field
	// element, and also the required size of the message and auxiliary
	// random data BIP 340 signs over.
	scalarSize = 32
)

// zeroArray32 zeroes the passed 32-byte array.  It is used to clear
// sensitive intermediate values (the effective private key, the nonce)
// from memory once they are no longer needed.
func zeroArray32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
}

// xorBytes32 returns a ^ b for two 32-byte arrays.
func xorBytes32(a, b [32]byte) [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Sign creates a BIP 340 Schnorr signature over msg (which must be exactly
// 32 bytes, typically the output of hashing a larger message) using the
// given private key, following the steps in [BIP340] Sign:
//
//  1. Let P = d*G; if P.y is odd, negate d.
//  2. t = d XOR taggedHash("BIP0340/aux", auxRand).
//  3. rand = taggedHash("BIP0340/nonce", t || x(P) || msg); k = rand mod n;
//     fail if k = 0.
//  4. R = k*G; if R.y is odd, negate k.
//  5. e = taggedHash("BIP0340/challenge", x(R) || x(P) || msg) mod n.
//  6. Signature = x(R) || (k + e*d) mod n.
//
// auxRand may be nil, in which case 32 zero bytes are used in its place;
// per BIP340 this still yields a secure, albeit not fault-hardened,
// signature. When non-nil it must be exactly 32 bytes.
func Sign(priv *secp256k1.PrivateKey, msg []byte, auxRand []byte) (*Signature, error) {
	if priv == nil {
		return nil, signatureError(ErrNilPrivateKey, "private key is nil")
	}
	if len(msg) != scalarSize {
		str := fmt.Sprintf("invalid message: byte length of %d not supported",
			len(msg))
		return nil, signatureError(ErrInvalidMsgSize, str)
	}
	if auxRand == nil {
		auxRand = make([]byte, scalarSize)
	}
	if len(auxRand) != scalarSize {
		str := fmt.Sprintf("invalid auxiliary data: byte length of %d not "+
			"supported", len(auxRand))
		return nil, signatureError(ErrInvalidAuxSize, str)
	}

	// Step 1: P = d*G; negate d if P.y is odd.
	var pj secp256k1.JacobianPoint
	secp256k1.ScalarBaseMult(&priv.Key, &pj)
	pj.ToAffine()

	effD := new(secp256k1.ModNScalar).Set(&priv.Key)
	if pj.Y.IsOdd() {
		effD.Negate()
	}
	var dBytes [32]byte
	effD.PutBytes(&dBytes)
	defer zeroArray32(&dBytes)

	var xP [32]byte
	px := pj.X
	px.Normalize().PutBytesUnchecked(xP[:])

	// Step 2: t = d XOR taggedHash("BIP0340/aux", auxRand).
	auxHash := taggedHash(tagAux, auxRand)
	t := xorBytes32(dBytes, auxHash)
	defer zeroArray32(&t)

	// Step 3: rand = taggedHash("BIP0340/nonce", t || x(P) || msg); k = rand
	// mod n; fail if k = 0.
	nonceHash := taggedHash(tagNonce, t[:], xP[:], msg)
	var k secp256k1.ModNScalar
	k.SetBytes(&nonceHash)
	if k.IsZero() {
		return nil, signatureError(ErrZeroNonce, "derived nonce is zero")
	}
	defer k.Zero()

	// Step 4: R = k*G; negate k if R.y is odd.
	var rj secp256k1.JacobianPoint
	secp256k1.ScalarBaseMult(&k, &rj)
	rj.ToAffine()
	if rj.Y.IsOdd() {
		k.Negate()
	}

	var rBytes [32]byte
	rx := rj.X
	rx.Normalize().PutBytesUnchecked(rBytes[:])

	// Step 5: e = taggedHash("BIP0340/challenge", x(R) || x(P) || msg) mod n.
	e := challengeScalar(rBytes[:], xP[:], msg)

	// Step 6: signature = x(R) || (k + e*d) mod n.
	s := new(secp256k1.ModNScalar).Mul2(&e, effD).Add(&k)

	var rField secp256k1.FieldVal
	rField.SetBytes(&rBytes)

	return NewSignature(&rField, s), nil
}
