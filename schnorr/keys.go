// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"fmt"

	"pragmacrypt.dev/secp256k1"
)

// PubKeyBytesLen is the number of bytes in a BIP 340 x-only public key.
const PubKeyBytesLen = 32

// GetPublicKey returns the 32-byte x-only public key corresponding to priv,
// as defined by the BIP 340 KeyGen algorithm.  Unlike a SEC1 public key, the
// x-only form never needs the effective-key negation Sign performs to force
// an even y coordinate: discarding y altogether already throws that bit
// away, so this is simply the x coordinate of d*G.
func GetPublicKey(priv *secp256k1.PrivateKey) [PubKeyBytesLen]byte {
	pub := priv.PubKey()
	var out [PubKeyBytesLen]byte
	copy(out[:], pub.SerializeXOnly())
	return out
}

// ParsePubKey parses a 32-byte x-only public key, lifting it to the point
// with even y per the BIP 340 convention, and reports an error if the x
// coordinate does not correspond to a point on the curve.
func ParsePubKey(serialized []byte) (*secp256k1.PublicKey, error) {
	if len(serialized) != PubKeyBytesLen {
		str := fmt.Sprintf("invalid x-only public key: byte length of %d "+
			"not supported", len(serialized))
		return nil, signatureError(ErrPubKeyInvalid, str)
	}
	pub, err := secp256k1.ParsePubKeyXOnly(serialized)
	if err != nil {
		return nil, signatureError(ErrPubKeyInvalid, err.Error())
	}
	return pub, nil
}
