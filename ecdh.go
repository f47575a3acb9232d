// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// GenerateSharedSecret generates a shared secret based on a private key and a
// public key using Diffie-Hellman key exchange (ECDH) (RFC 5903) and
// serializes the resulting point the same way a public key is serialized
// (compressed, 33 bytes, or uncompressed, 65 bytes).
//
// It is recommended to securely hash the result before using as a
// cryptographic key.
func GenerateSharedSecret(privkey *PrivateKey, pubkey *PublicKey, compressed bool) []byte {
	var point, result JacobianPoint
	pubkey.AsJacobian(&point)
	ScalarMult(&privkey.Key, &point, &result)
	result.ToAffine()
	shared := NewPublicKey(&result.X, &result.Y)
	if compressed {
		return shared.SerializeCompressed()
	}
	return shared.SerializeUncompressed()
}

// ECDH generates a shared secret like GenerateSharedSecret, however by being
// part of the private key it is closer to go's own ecdh api, and it
// additionally validates the remote public key rather than trusting the
// caller to have done so: an off-curve remote point or a multiplication
// that lands on the point at infinity is rejected instead of serialized.
func (privkey *PrivateKey) ECDH(remote *PublicKey, compressed bool) ([]byte, error) {
	if !remote.IsOnCurve() {
		return nil, makeError(ErrInvalidPoint, "remote public key is not "+
			"a point on the secp256k1 curve")
	}

	var point, result JacobianPoint
	remote.AsJacobian(&point)
	ScalarMult(&privkey.Key, &point, &result)
	if (result.X.IsZero() && result.Y.IsZero()) || result.Z.IsZero() {
		return nil, makeError(ErrPointAtInfinity, "shared secret is the "+
			"point at infinity")
	}
	result.ToAffine()
	shared := NewPublicKey(&result.X, &result.Y)
	if compressed {
		return shared.SerializeCompressed(), nil
	}
	return shared.SerializeUncompressed(), nil
}
