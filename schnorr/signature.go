// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"fmt"

	"pragmacrypt.dev/secp256k1"
)

// Signature is a type representing a BIP 340 Schnorr signature.
type Signature struct {
	r secp256k1.FieldVal
	s secp256k1.ModNScalar
}

// SignatureSize is the size of an encoded BIP 340 Schnorr signature.
const SignatureSize = 64

// NewSignature instantiates a new signature given the r and s values.
func NewSignature(r *secp256k1.FieldVal, s *secp256k1.ModNScalar) *Signature {
	var sig Signature
	sig.r.Set(r).Normalize()
	sig.s.Set(s)
	return &sig
}

// R returns the r value of the signature.
func (sig *Signature) R() secp256k1.FieldVal {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() secp256k1.ModNScalar {
	return sig.s
}

// Serialize returns the BIP 340 Schnorr signature in the standard 64-byte
// format:
//
//	sig[0:32]  r, the x coordinate of the nonce point, big-endian
//	sig[32:64] s, the scalar (k + e*d) mod n, big-endian
func (sig *Signature) Serialize() []byte {
	var b [SignatureSize]byte
	r := sig.r
	r.Normalize().PutBytesUnchecked(b[0:32])
	sig.s.PutBytesUnchecked(b[32:64])
	return b[:]
}

// ParseSignature parses a signature according to the BIP 340 specification
// and enforces the following restrictions specific to secp256k1:
//
//   - The r component must be in the valid range for secp256k1 field
//     elements, i.e. strictly less than the field prime.
//   - The s component must be in the valid range for secp256k1 scalars,
//     i.e. strictly less than the group order.
func ParseSignature(sig []byte) (*Signature, error) {
	sigLen := len(sig)
	if sigLen != SignatureSize {
		str := fmt.Sprintf("malformed signature: wrong size: %d != %d",
			sigLen, SignatureSize)
		return nil, signatureError(ErrSigSize, str)
	}

	var r secp256k1.FieldVal
	if overflow := r.SetByteSlice(sig[0:32]); overflow {
		str := "invalid signature: r >= field prime"
		return nil, signatureError(ErrSigRTooBig, str)
	}

	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		str := "invalid signature: s >= group order"
		return nil, signatureError(ErrSigSTooBig, str)
	}

	return &Signature{r: r, s: s}, nil
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Equals(&otherSig.r) && sig.s.Equals(&otherSig.s)
}
