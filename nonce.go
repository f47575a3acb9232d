// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [RFC6979]: Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA)
//     https://tools.ietf.org/html/rfc6979

// NonceRFC6979 generates a deterministic ECDSA nonce per RFC 6979 section
// 3.2 for the given private key and message hash, optionally mixed with
// caller-provided extra data and a protocol version tag.  extraIterations
// additional candidates are generated and discarded before the returned one,
// which the caller uses to deterministically produce an alternate nonce for
// a retry without reusing the same input (signature.go's sign loop does
// this via its iteration counter).
//
// The private key and hash are normalized to exactly 32 bytes each by
// truncating longer inputs and left padding shorter ones with zeros.  The
// extra data is only included when it is exactly 32 bytes and the version
// only when it is exactly 16 bytes; mismatched lengths are ignored so that
// callers without either simply pass nil.
func NonceRFC6979(privKey, hash, extraData, version []byte, extraIterations uint32) *ModNScalar {
	// Input to HMAC is the 32-byte private key and the 32-byte hash.  In
	// addition, it may include the optional 32-byte extra data and 16-byte
	// version.  Create a fixed-size array to avoid extra allocs and slice it
	// properly.
	const (
		privKeyLen = 32
		hashLen    = 32
		extraLen   = 32
		versionLen = 16
	)
	var keyBuf [privKeyLen + hashLen + extraLen + versionLen]byte

	// Truncate rightmost bytes of private key and hash if they are too long
	// and leave left padding of zeros when they're too short.
	if len(privKey) > privKeyLen {
		privKey = privKey[:privKeyLen]
	}
	if len(hash) > hashLen {
		hash = hash[:hashLen]
	}
	offset := privKeyLen - len(privKey) // Zero left padding if needed.
	offset += copy(keyBuf[offset:], privKey)
	offset += hashLen - len(hash) // Zero left padding if needed.
	offset += copy(keyBuf[offset:], hash)
	if len(extraData) == extraLen {
		offset += copy(keyBuf[offset:], extraData)
		if len(version) == versionLen {
			offset += copy(keyBuf[offset:], version)
		}
	} else if len(version) == versionLen {
		// When the version was specified, but not the extra data, leave the
		// extra data portion all zero and include it.
		offset += extraLen
		offset += copy(keyBuf[offset:], version)
	}
	key := keyBuf[:offset]

	// Step b.
	//
	// V = 0x01 0x01 0x01 ... 0x01 (32 bytes)
	var v [32]byte
	for i := range v {
		v[i] = 0x01
	}

	// Step c.
	//
	// K = 0x00 0x00 0x00 ... 0x00 (32 bytes)
	var k [32]byte

	// Step d.
	//
	// K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1))
	k = hmacSha256(k[:], v[:], []byte{0x00}, key)

	// Step e.
	//
	// V = HMAC_K(V)
	v = hmacSha256(k[:], v[:])

	// Step f.
	//
	// K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1))
	k = hmacSha256(k[:], v[:], []byte{0x01}, key)

	// Step g.
	//
	// V = HMAC_K(V)
	v = hmacSha256(k[:], v[:])

	// Step h.
	//
	// Repeat until a valid, in-range value for k is found:
	//   V = HMAC_K(V)
	//   k = bits2int(V)
	//   If k is within [1, N-1], return it; otherwise iterate:
	//     K = HMAC_K(V || 0x00)
	//     V = HMAC_K(V)
	generate := func() *ModNScalar {
		for {
			v = hmacSha256(k[:], v[:])

			var candidate ModNScalar
			overflow := candidate.SetBytes(&v)
			if overflow || candidate.IsZero() {
				k = hmacSha256(k[:], v[:], []byte{0x00})
				v = hmacSha256(k[:], v[:])
				continue
			}
			return &candidate
		}
	}

	for i := uint32(0); i < extraIterations; i++ {
		generate()
		k = hmacSha256(k[:], v[:], []byte{0x00})
		v = hmacSha256(k[:], v[:])
	}
	return generate()
}
