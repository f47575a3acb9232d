// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/hmac"
	"crypto/rand"

	sha256simd "github.com/minio/sha256-simd"
)

// Sha256Func computes the SHA-256 digest of the concatenation of the passed
// byte slices.
type Sha256Func func(chunks ...[]byte) [32]byte

// HmacSha256Func computes HMAC-SHA256 over the concatenation of the passed
// byte slices using the given key.
type HmacSha256Func func(key []byte, chunks ...[]byte) [32]byte

// RandomBytesFunc returns n cryptographically secure random bytes, or an
// error if enough entropy could not be gathered.
type RandomBytesFunc func(n int) ([]byte, error)

// defaultSha256 hashes its input with github.com/minio/sha256-simd, a
// hardware-accelerated drop-in replacement for crypto/sha256 that this
// package's hash and nonce derivation routines never call directly, so a
// caller can swap in a different implementation (e.g. a FIPS module)
// through SetSha256 without touching any call site.
func defaultSha256(chunks ...[]byte) [32]byte {
	h := sha256simd.New()
	for _, c := range chunks {
		h.Write(c)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// defaultHmacSha256 computes HMAC-SHA256 using the standard library's
// constant-time HMAC construction layered on top of sha256-simd's digest.
func defaultHmacSha256(key []byte, chunks ...[]byte) [32]byte {
	h := hmac.New(sha256simd.New, key)
	for _, c := range chunks {
		h.Write(c)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// defaultRandomBytes draws from crypto/rand.  No ecosystem CSPRNG
// replacement appears anywhere in this package's source material, so this
// is the one ambient concern left directly on the standard library.
func defaultRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

var (
	sha256Hash  Sha256Func      = defaultSha256
	hmacSha256  HmacSha256Func  = defaultHmacSha256
	randomBytes RandomBytesFunc = defaultRandomBytes
)

// SetSha256 overrides the SHA-256 implementation used throughout this
// package, for example to inject a FIPS-validated module.
func SetSha256(fn Sha256Func) {
	sha256Hash = fn
}

// SetHmacSha256 overrides the HMAC-SHA256 implementation used by RFC 6979
// nonce generation.
func SetHmacSha256(fn HmacSha256Func) {
	hmacSha256 = fn
}

// SetRandomBytes overrides the source of cryptographically secure random
// bytes used by key generation and optional signing entropy.
func SetRandomBytes(fn RandomBytesFunc) {
	randomBytes = fn
}

// Sha256 hashes the concatenation of the passed byte slices using this
// package's currently configured SHA-256 collaborator.  It is exported so
// other packages built on top of this one, such as schnorr, share the same
// swappable hash implementation instead of importing crypto/sha256 (or
// sha256-simd) a second time.
func Sha256(chunks ...[]byte) [32]byte {
	return sha256Hash(chunks...)
}
