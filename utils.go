// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// zeroArray32 zeroes the provided 32-byte array.  It is used to clear
// sensitive secret key material from memory once it is no longer needed.
func zeroArray32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
}

// IsValidPrivateKey returns whether the passed 32-byte big-endian value is
// a valid secp256k1 private key, i.e. a nonzero scalar strictly less than
// the group order N.
func IsValidPrivateKey(b []byte) bool {
	if len(b) != PrivKeyBytesLen {
		return false
	}
	var d ModNScalar
	overflow := d.SetByteSlice(b)
	return !overflow && !d.IsZero()
}

// HashToPrivateKey derives a private key deterministically from an
// arbitrary-length seed by repeatedly hashing the seed with an incrementing
// counter until a value in the valid private key range [1, N-1] is
// produced.  It gives up after 256 counter values and returns an
// ErrEntropyFailure error.  This is useful for constructions that need to turn some other
// source of entropy, such as a BIP340 auxiliary random value or a
// passphrase-derived seed, directly into a secp256k1 scalar.
func HashToPrivateKey(seed []byte) (*PrivateKey, error) {
	for counter := uint32(0); counter < 256; counter++ {
		digest := sha256Hash(seed, []byte{
			byte(counter), byte(counter >> 8), byte(counter >> 16), byte(counter >> 24),
		})
		var d ModNScalar
		overflow := d.SetBytes(&digest)
		if overflow || d.IsZero() {
			continue
		}
		return NewPrivateKey(&d), nil
	}
	return nil, makeError(ErrEntropyFailure, "could not derive a valid private key from seed")
}
