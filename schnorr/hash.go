// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import "pragmacrypt.dev/secp256k1"

// References:
//   [BIP340]: Schnorr Signatures for secp256k1
//     https://github.com/bitcoin/bips/blob/master/bip-0340.mediawiki

// Domain separation tags for the three tagged hashes BIP 340 uses.
var (
	tagAux       = []byte("BIP0340/aux")
	tagNonce     = []byte("BIP0340/nonce")
	tagChallenge = []byte("BIP0340/challenge")
)

// taggedHash implements the tagged hash construction from BIP 340:
//
//	taggedHash(tag, msg) = SHA256(SHA256(tag) || SHA256(tag) || msg)
//
// It defers the actual digest computation to secp256k1.Sha256 so this
// package shares the parent package's swappable SHA-256 collaborator
// instead of importing a hash implementation of its own.
func taggedHash(tag []byte, chunks ...[]byte) [32]byte {
	tagHash := secp256k1.Sha256(tag)
	parts := make([][]byte, 0, len(chunks)+2)
	parts = append(parts, tagHash[:], tagHash[:])
	parts = append(parts, chunks...)
	return secp256k1.Sha256(parts...)
}

// challengeScalar computes e = taggedHash("BIP0340/challenge", r || xP || m)
// reduced modulo the curve order, per BIP340 steps Sign.5 and Verify.3.
func challengeScalar(r, xP, msg []byte) secp256k1.ModNScalar {
	h := taggedHash(tagChallenge, r, xP, msg)
	var e secp256k1.ModNScalar
	e.SetBytes(&h)
	return e
}
