// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// PrivateKey provides facilities for working with secp256k1 private keys within
// this package and includes functionality such as serializing and parsing them
// as well as computing their associated public key.
type PrivateKey struct {
	Key ModNScalar
}

// NewPrivateKey instantiates a new private key from a scalar encoded as a
// big integer.
func NewPrivateKey(key *ModNScalar) *PrivateKey {
	return &PrivateKey{Key: *key}
}

// PrivKeyFromBytes returns a private based on the provided byte slice which is
// interpreted as an unsigned 256-bit big-endian integer in the range [0, N-1],
// where N is the order of the curve.
//
// Note that this means passing a slice with a value outside that range is
// silently reduced modulo N.  It is up to the caller to either provide a
// value in the appropriate range, use ParsePrivateKey to reject out-of-range
// input instead, or choose to accept the described behavior.
//
// Typically callers should simply make use of GeneratePrivateKey when creating
// private keys which properly handles generation of appropriate values.
func PrivKeyFromBytes(privKeyBytes []byte) *PrivateKey {
	var d ModNScalar
	d.SetByteSlice(privKeyBytes)
	return NewPrivateKey(&d)
}

// GeneratePrivateKey returns a private key that is suitable for use with
// secp256k1 by rejection sampling the configured random byte collaborator
// until a scalar in the valid range [1, N-1] is produced.  The probability
// any given 256-bit candidate is out of range is roughly 1 in 2^128, so in
// practice the first draw succeeds.
func GeneratePrivateKey() (*PrivateKey, error) {
	for {
		b, err := randomBytes(PrivKeyBytesLen)
		if err != nil || len(b) != PrivKeyBytesLen {
			return nil, makeError(ErrEntropyFailure, "failed to read 32 "+
				"bytes from the random source")
		}
		var d ModNScalar
		overflow := d.SetByteSlice(b)
		for i := range b {
			b[i] = 0
		}
		if overflow || d.IsZero() {
			continue
		}
		return NewPrivateKey(&d), nil
	}
}

// PubKey computes and returns the public key corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	var result JacobianPoint
	ScalarBaseMult(&p.Key, &result)
	result.ToAffine()
	return NewPublicKey(&result.X, &result.Y)
}

// Sign generates an ECDSA signature for the provided hash (which should be the
// result of hashing a larger message) using the private key. Produced signature
// is deterministic (same message and same key yield the same signature) and
// canonical in accordance with RFC6979 and BIP0062.
func (p *PrivateKey) Sign(hash []byte) *Signature {
	return signRFC6979(p, hash, nil)
}

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p PrivateKey) Serialize() []byte {
	privKeyBytes := p.Key.Bytes()
	return privKeyBytes[:]
}
