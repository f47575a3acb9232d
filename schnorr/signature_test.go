// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"pragmacrypt.dev/secp256k1"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// bip340SignVectors are the signing test vectors from the reference BIP 340
// test vector file (the subset that includes a secret key).
var bip340SignVectors = []struct {
	name    string
	privKey string
	pubKey  string
	auxRand string
	msg     string
	sig     string
}{{
	name:    "vector 0",
	privKey: "0000000000000000000000000000000000000000000000000000000000000003",
	pubKey:  "f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9",
	auxRand: "0000000000000000000000000000000000000000000000000000000000000000",
	msg:     "0000000000000000000000000000000000000000000000000000000000000000",
	sig: "e907831f80848d1069a5371b402410364bdf1c5f8307b0084c55f1ce2dca8215" +
		"25f66a4a85ea8b71e482a74f382d2ce5ebeee8fdb2172f477df4900d310536c0",
}, {
	name:    "vector 1",
	privKey: "b7e151628aed2a6abf7158809cf4f3c762e7160f38b4da56a784d9045190cfef",
	pubKey:  "dff1d77f2a671c5f36183726db2341be58feae1da2deced843240f7b502ba659",
	auxRand: "0000000000000000000000000000000000000000000000000000000000000001",
	msg:     "243f6a8885a308d313198a2e03707344a4093822299f31d0082efa98ec4e6c89",
	sig: "6896bd60eeae296db48a229ff71dfe071bde413e6d43f917dc8dcf8c78de3341" +
		"8906d11ac976abccb20b091292bff4ea897efcb639ea871cfa95f6de339e4b0a",
}, {
	name:    "vector 2",
	privKey: "c90fdaa22168c234c4c6628b80dc1cd129024e088a67cc74020bbea63b14e5c9",
	pubKey:  "dd308afec5777e13121fa72b9cc1b7cc0139715309b086c960e18fd969774eb8",
	auxRand: "c87aa53824b4d7ae2eb035a2b5bbbccc080e76cdc6d1692c4b0b62d798e6d906",
	msg:     "7e2d58d8b3bcdf1abadec7829054f90dda9805aab56c77333024b9d0a508b75c",
	sig: "5831aaeed7b44bb74e5eab94ba9d4294c49bcf2a60728d8b4c200f50dd313c1b" +
		"ab745879a5ad954a72c45a91c3a51d3c7adea98d82f8481e0e1e03674a6f3fb7",
}, {
	name:    "vector 3 (test fails if msg is reduced modulo p or n)",
	privKey: "0b432b2677937381aef05bb02a66ecd012773062cf3fa2549e44f58ed2401710",
	pubKey:  "25d1dff95105f5253c4022f628a996ad3a0d95fbf21d468a1b33f8c160d8f517",
	auxRand: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	msg:     "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	sig: "7eb0509757e246f19449885651611cb965ecc1a187dd51b64fda1edc9637d5ec" +
		"97582b9cb13db3933705b32ba982af5af25fd78881ebb32771fc5922efc66ea3",
}}

// TestSignBIP340Vectors ensures signing produces the signatures from the
// BIP 340 reference test vectors and that each one verifies.
func TestSignBIP340Vectors(t *testing.T) {
	for _, test := range bip340SignVectors {
		priv := secp256k1.PrivKeyFromBytes(hexToBytes(test.privKey))
		msg := hexToBytes(test.msg)

		// The x-only public key must match the vector before signing.
		pubKey := GetPublicKey(priv)
		require.Equal(t, hexToBytes(test.pubKey), pubKey[:], test.name)

		sig, err := Sign(priv, msg, hexToBytes(test.auxRand))
		require.NoError(t, err, test.name)
		require.Equal(t, hexToBytes(test.sig), sig.Serialize(), test.name)

		valid, err := Verify(sig, msg, pubKey[:])
		require.NoError(t, err, test.name)
		require.True(t, valid, test.name)
	}
}

// TestVerifyBIP340Vectors ensures verification agrees with the BIP 340
// reference test vectors that only specify a public key, including the
// failure cases.
func TestVerifyBIP340Vectors(t *testing.T) {
	tests := []struct {
		name    string
		pubKey  string
		msg     string
		sig     string
		valid   bool
		wantErr error // non-nil when the failure is a shape error
	}{{
		name:   "vector 4",
		pubKey: "d69c3509bb99e412e68b0fe8544e72837dfa30746d8be2aa65975f29d22dc7b9",
		msg:    "4df3c3f68fcc83b27e9d42c90431a72499f17875c81a599b566c9889b9696703",
		sig: "00000000000000000000003b78ce563f89a0ed9414f5aa28ad0d96d6795f9c63" +
			"76afb1548af603b3eb45c9f8207dee1060cb71c04e80f593060b07d28308d7f4",
		valid: true,
	}, {
		name:   "vector 5 (public key not on the curve)",
		pubKey: "eefdea4cdb677750a420fee807eacf21eb9898ae79b9768766e4faa04a2d4a34",
		msg:    "243f6a8885a308d313198a2e03707344a4093822299f31d0082efa98ec4e6c89",
		sig: "6cff5c3ba86c69ea4b7376f31a9bcb4f74c1976089b2d9963da2e5543e177769" +
			"69e89b4c5564d00349106b8497785dd7d1d713a8ae82b32fa79d5f7fc407d39b",
		valid:   false,
		wantErr: ErrPubKeyInvalid,
	}, {
		name:   "vector 6 (has_even_y(R) is false)",
		pubKey: "dff1d77f2a671c5f36183726db2341be58feae1da2deced843240f7b502ba659",
		msg:    "243f6a8885a308d313198a2e03707344a4093822299f31d0082efa98ec4e6c89",
		sig: "fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556" +
			"3cc27944640ac607cd107ae10923d9ef7a73c643e166be5ebeafa34b1ac553e2",
		valid: false,
	}}

	for _, test := range tests {
		sig, err := ParseSignature(hexToBytes(test.sig))
		require.NoError(t, err, test.name)

		valid, err := Verify(sig, hexToBytes(test.msg), hexToBytes(test.pubKey))
		if test.wantErr != nil {
			require.True(t, errors.Is(err, test.wantErr), test.name)
		} else {
			require.NoError(t, err, test.name)
		}
		require.Equal(t, test.valid, valid, test.name)
	}
}

// TestParseSignatureErrors ensures parsing rejects out-of-range signature
// components, per the BIP 340 vectors whose failures are shape errors.
func TestParseSignatureErrors(t *testing.T) {
	tests := []struct {
		name string
		sig  string
		err  error
	}{{
		name: "wrong length",
		sig:  "00",
		err:  ErrSigSize,
	}, {
		name: "vector 13 (sig[0:32] is equal to the field prime)",
		sig: "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f" +
			"69e89b4c5564d00349106b8497785dd7d1d713a8ae82b32fa79d5f7fc407d39b",
		err: ErrSigRTooBig,
	}, {
		name: "vector 14 (sig[32:64] is equal to the group order)",
		sig: "6cff5c3ba86c69ea4b7376f31a9bcb4f74c1976089b2d9963da2e5543e177769" +
			"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		err: ErrSigSTooBig,
	}}

	for _, test := range tests {
		_, err := ParseSignature(hexToBytes(test.sig))
		require.True(t, errors.Is(err, test.err), test.name)
	}
}

// TestSignInputValidation ensures the documented shape errors for signing.
func TestSignInputValidation(t *testing.T) {
	priv := secp256k1.PrivKeyFromBytes(hexToBytes("000000000000000000000000" +
		"0000000000000000000000000000000000000003"))
	msg := make([]byte, 32)

	_, err := Sign(nil, msg, nil)
	require.True(t, errors.Is(err, ErrNilPrivateKey))

	_, err = Sign(priv, msg[:31], nil)
	require.True(t, errors.Is(err, ErrInvalidMsgSize))

	_, err = Sign(priv, msg, make([]byte, 31))
	require.True(t, errors.Is(err, ErrInvalidAuxSize))

	// nil aux is explicitly allowed and equals 32 zero bytes.
	sigNilAux, err := Sign(priv, msg, nil)
	require.NoError(t, err)
	sigZeroAux, err := Sign(priv, msg, make([]byte, 32))
	require.NoError(t, err)
	require.True(t, sigNilAux.IsEqual(sigZeroAux))
}

// TestSignVerifyRoundTrip ensures signatures over random keys and messages
// round trip through serialization and verify, and stop verifying when the
// message changes.
func TestSignVerifyRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)

		msg := secp256k1.Sha256([]byte{byte(i)})
		aux := secp256k1.Sha256([]byte{0xaa, byte(i)})

		sig, err := Sign(priv, msg[:], aux[:])
		require.NoError(t, err)

		pubKey := GetPublicKey(priv)
		parsed, err := ParseSignature(sig.Serialize())
		require.NoError(t, err)
		require.True(t, parsed.IsEqual(sig))

		valid, err := Verify(parsed, msg[:], pubKey[:])
		require.NoError(t, err)
		require.True(t, valid)

		// Flipping a message bit must invalidate the signature.
		badMsg := make([]byte, len(msg))
		copy(badMsg, msg[:])
		badMsg[0] ^= 0x01
		valid, err = Verify(parsed, badMsg, pubKey[:])
		require.NoError(t, err)
		require.False(t, valid)
	}
}

// TestGetPublicKeyMatchesParse ensures the x-only public key derived from a
// private key lifts back to a point with the same x coordinate.
func TestGetPublicKeyMatchesParse(t *testing.T) {
	for i := 1; i <= 8; i++ {
		seed := secp256k1.Sha256([]byte{byte(i)})
		priv := secp256k1.PrivKeyFromBytes(seed[:])

		xOnly := GetPublicKey(priv)
		pub, err := ParsePubKey(xOnly[:])
		require.NoError(t, err)
		require.Equal(t, xOnly[:], pub.SerializeXOnly())
		require.False(t, pub.Y.IsOdd())
	}
}
