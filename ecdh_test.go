// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGenerateSharedSecretSymmetry ensures both parties of an ECDH exchange
// derive the same shared secret in both serialization formats.
func TestGenerateSharedSecretSymmetry(t *testing.T) {
	priv1, err := GeneratePrivateKey()
	require.NoError(t, err)
	priv2, err := GeneratePrivateKey()
	require.NoError(t, err)

	for _, compressed := range []bool{true, false} {
		secret1 := GenerateSharedSecret(priv1, priv2.PubKey(), compressed)
		secret2 := GenerateSharedSecret(priv2, priv1.PubKey(), compressed)
		require.Equal(t, secret1, secret2)

		wantLen := PubKeyBytesLenUncompressed
		if compressed {
			wantLen = PubKeyBytesLenCompressed
		}
		require.Len(t, secret1, wantLen)
	}
}

// TestGenerateSharedSecretKnownValue ensures the shared secret for the
// scalars 1 and 2 is the serialization of 2*G, since 1*(2*G) = 2*(1*G) =
// 2*G.
func TestGenerateSharedSecretKnownValue(t *testing.T) {
	priv1 := PrivKeyFromBytes(hexToBytes("00000000000000000000000000000000" +
		"00000000000000000000000000000001"))
	priv2 := PrivKeyFromBytes(hexToBytes("00000000000000000000000000000000" +
		"00000000000000000000000000000002"))

	// 2*G in compressed form.  Its y coordinate is even, hence the 0x02
	// prefix.
	wantCompressed := hexToBytes("02c6047f9441ed7d6d3045406e95c07cd85c778e" +
		"4b8cef3ca7abac09b95c709ee5")
	require.Equal(t, wantCompressed,
		GenerateSharedSecret(priv1, priv2.PubKey(), true))
	require.Equal(t, wantCompressed,
		GenerateSharedSecret(priv2, priv1.PubKey(), true))

	wantUncompressed := hexToBytes("04c6047f9441ed7d6d3045406e95c07cd85c77" +
		"8e4b8cef3ca7abac09b95c709ee51ae168fea63dc339a3c58419466ceaeef7f632" +
		"653266d0e1236431a950cfe52a")
	require.Equal(t, wantUncompressed,
		GenerateSharedSecret(priv1, priv2.PubKey(), false))
}

// TestECDHValidatesRemote ensures the ECDH method rejects remote public keys
// that are not on the curve instead of deriving a secret from them.
func TestECDHValidatesRemote(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)

	// A point constructed directly with coordinates that do not satisfy the
	// curve equation.
	badRemote := NewPublicKey(
		new(FieldVal).SetInt(1),
		new(FieldVal).SetInt(1),
	)
	_, err = priv.ECDH(badRemote, true)
	require.True(t, errors.Is(err, ErrInvalidPoint))

	// A valid remote key works through the same path.
	peer, err := GeneratePrivateKey()
	require.NoError(t, err)
	secret, err := priv.ECDH(peer.PubKey(), true)
	require.NoError(t, err)
	require.Equal(t, GenerateSharedSecret(priv, peer.PubKey(), true), secret)
}
