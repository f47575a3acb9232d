// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"fmt"
)

// This file is the boundary between the loosely-typed inputs callers hold
// (hex strings, byte slices of unchecked length and range) and the canonical
// value types the rest of the package operates on.  Everything below
// normalizes and validates exactly once so the arithmetic core never has to
// consider malformed input.

// DecodeHex decodes the passed big-endian hex string into bytes, rejecting
// strings with an odd number of digits or non-hex characters.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("invalid hex string %q: %v", s, err)
		return nil, makeError(ErrInvalidEncoding, str)
	}
	return b, nil
}

// ParseFieldElement interprets the passed 32 bytes as a big-endian unsigned
// integer and returns the corresponding canonical field element.  Unlike
// FieldVal.SetByteSlice, which silently reduces, values greater than or
// equal to the field prime are rejected here since a canonical encoding is
// required at the API boundary.
func ParseFieldElement(b []byte) (*FieldVal, error) {
	if len(b) != 32 {
		str := fmt.Sprintf("invalid field element: byte length of %d not "+
			"supported", len(b))
		return nil, makeError(ErrInvalidEncoding, str)
	}
	var f FieldVal
	if overflow := f.SetByteSlice(b); overflow {
		str := "invalid field element: value >= field prime"
		return nil, makeError(ErrFieldOverflow, str)
	}
	return &f, nil
}

// ParseScalar interprets the passed 32 bytes as a big-endian unsigned
// integer and returns the corresponding canonical scalar.  Values greater
// than or equal to the group order are rejected.  Note that zero is a valid
// scalar here; use ParsePrivateKey when the nonzero private key range is
// required.
func ParseScalar(b []byte) (*ModNScalar, error) {
	if len(b) != 32 {
		str := fmt.Sprintf("invalid scalar: byte length of %d not supported",
			len(b))
		return nil, makeError(ErrInvalidEncoding, str)
	}
	var s ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		str := "invalid scalar: value >= group order"
		return nil, makeError(ErrScalarOverflow, str)
	}
	return &s, nil
}

// ParsePrivateKey interprets the passed 32 bytes as a big-endian unsigned
// integer and returns the corresponding private key, rejecting values
// outside the valid private key range [1, N-1].  This differs from
// PrivKeyFromBytes, which accepts arbitrary input and reduces it, and is
// the right choice when the bytes come from an untrusted source.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivKeyBytesLen {
		str := fmt.Sprintf("invalid private key: byte length of %d not "+
			"supported", len(b))
		return nil, makeError(ErrInvalidEncoding, str)
	}
	var d ModNScalar
	overflow := d.SetByteSlice(b)
	if overflow || d.IsZero() {
		str := "invalid private key: scalar not in range [1, N-1]"
		return nil, makeError(ErrInvalidPrivateKey, str)
	}
	return NewPrivateKey(&d), nil
}

// PrivKeyFromHex decodes the passed hex string and parses it as a private
// key per ParsePrivateKey.
func PrivKeyFromHex(s string) (*PrivateKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return ParsePrivateKey(b)
}

// ParsePubKeyHex decodes the passed hex string and parses it as a SEC1
// encoded public key per ParsePubKey.
func ParsePubKeyHex(s string) (*PublicKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return ParsePubKey(b)
}

// ParseDERSignatureHex decodes the passed hex string and parses it as a DER
// encoded ECDSA signature per ParseDERSignature.
func ParseDERSignatureHex(s string) (*Signature, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return ParseDERSignature(b)
}
