// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"testing"
)

// TestSha256KnownVectors ensures the default SHA-256 collaborator produces
// the expected digests, including when the input is split across chunks.
func TestSha256KnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		chunks [][]byte
		want   string // hex encoded expected digest
	}{{
		name:   "empty",
		chunks: nil,
		want:   "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	}, {
		name:   "abc",
		chunks: [][]byte{[]byte("abc")},
		want:   "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	}, {
		name:   "abc split across chunks",
		chunks: [][]byte{[]byte("a"), []byte("b"), []byte("c")},
		want:   "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	}}

	for _, test := range tests {
		got := Sha256(test.chunks...)
		if !bytes.Equal(got[:], hexToBytes(test.want)) {
			t.Errorf("%s: mismatched digest -- got %x, want %s", test.name,
				got, test.want)
		}
	}
}

// TestSetSha256 ensures an injected SHA-256 collaborator replaces the
// default for every consumer of the package-level seam.
func TestSetSha256(t *testing.T) {
	defer SetSha256(defaultSha256)

	var called bool
	SetSha256(func(chunks ...[]byte) [32]byte {
		called = true
		return defaultSha256(chunks...)
	})

	Sha256([]byte("probe"))
	if !called {
		t.Fatal("injected sha256 collaborator was not used")
	}
}

// TestSetHmacSha256 ensures an injected HMAC collaborator is what RFC 6979
// nonce generation actually consumes.
func TestSetHmacSha256(t *testing.T) {
	defer SetHmacSha256(defaultHmacSha256)

	var calls int
	SetHmacSha256(func(key []byte, chunks ...[]byte) [32]byte {
		calls++
		return defaultHmacSha256(key, chunks...)
	})

	privKey := hexToBytes("0011111111111111111111111111111111111111111111" +
		"111111111111111111")
	hash := hexToBytes("00000000000000000000000000000000000000000000000000" +
		"00000000000001")
	NonceRFC6979(privKey, hash, nil, nil, 0)
	if calls == 0 {
		t.Fatal("injected hmac collaborator was not used")
	}
}
