// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "fmt"

// PublicKey provides facilities for working with secp256k1 public keys
// within this package and includes functionality such as parsing and
// serializing them in the various standard formats, along with the
// coordinates themselves so callers that need raw field arithmetic (for
// example the schnorr package) can get at them directly.
type PublicKey struct {
	X, Y FieldVal
}

// NewPublicKey instantiates a new public key with the given x and y
// coordinates.
//
// It should be noted that, unlike ParsePubKey, since this accepts arbitrary
// x and y coordinates, it allows creation of public keys that are not valid
// points on the secp256k1 curve.  The IsOnCurve method can be used to
// determine validity when it matters.
func NewPublicKey(x, y *FieldVal) *PublicKey {
	var pubKey PublicKey
	pubKey.X.Set(x)
	pubKey.Y.Set(y)
	return &pubKey
}

const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	// PubKeyBytesLenXOnly is the number of bytes of the x-only public key
	// representation used by BIP 340 Schnorr signatures.
	PubKeyBytesLenXOnly = 32

	pubkeyCompressed   byte = 0x2
	pubkeyUncompressed byte = 0x4
	pubkeyHybridEven   byte = 0x6
	pubkeyHybridOdd    byte = 0x7
)

// AsJacobian converts the public key into a Jacobian point with Z = 1 and
// stores the result in result.
func (p *PublicKey) AsJacobian(result *JacobianPoint) {
	result.X.Set(&p.X)
	result.Y.Set(&p.Y)
	result.Z.SetInt(1)
}

// IsOnCurve returns whether or not the public key represents a point on the
// secp256k1 curve.
func (p *PublicKey) IsOnCurve() bool {
	var x, y FieldVal
	x.Set(&p.X).Normalize()
	y.Set(&p.Y).Normalize()
	return isOnCurve(&x, &y)
}

// ParsePubKey parses a secp256k1 public key encoded according to the format
// specified by ANSI X9.62-1998, i.e. the SEC1 standard, and reports an error
// if it is not valid.  It supports compressed, uncompressed, and hybrid
// formats.
func ParsePubKey(serialized []byte) (key *PublicKey, err error) {
	var x, y FieldVal
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		format := serialized[0]
		switch format {
		case pubkeyUncompressed, pubkeyHybridEven, pubkeyHybridOdd:
		default:
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				format)
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}

		if overflow := x.SetByteSlice(serialized[1:33]); overflow {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		if overflow := y.SetByteSlice(serialized[33:65]); overflow {
			str := "invalid public key: y >= field prime"
			return nil, makeError(ErrPubKeyYTooBig, str)
		}
		if (format == pubkeyHybridEven || format == pubkeyHybridOdd) &&
			y.IsOdd() != (format == pubkeyHybridOdd) {
			str := fmt.Sprintf("invalid public key: y oddness does not "+
				"match specified value of format byte %x", format)
			return nil, makeError(ErrPubKeyMismatchedOddness, str)
		}

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		ybit := format == pubkeyCompressed+1
		switch format {
		case pubkeyCompressed, pubkeyCompressed + 1:
		default:
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				format)
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}

		if overflow := x.SetByteSlice(serialized[1:33]); overflow {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		if valid := DecompressY(&x, ybit, &y); !valid {
			str := "invalid public key: x coordinate is not on the curve"
			return nil, makeError(ErrPubKeyNotOnCurve, str)
		}

	default:
		str := fmt.Sprintf("invalid public key: byte length of %d not "+
			"supported for compressed or uncompressed formats", len(serialized))
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}

	if !isOnCurve(&x, &y) {
		str := fmt.Sprintf("invalid public key: [%v,%v] not on secp256k1 curve",
			x, y)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}

	return NewPublicKey(&x, &y), nil
}

// ParsePubKeyXOnly parses a 32-byte x-only public key such as those used by
// BIP 340 Schnorr signatures, lifting it to the point with an even y
// coordinate per the convention that scheme uses.
func ParsePubKeyXOnly(serialized []byte) (*PublicKey, error) {
	if len(serialized) != PubKeyBytesLenXOnly {
		str := fmt.Sprintf("invalid x-only public key: byte length of %d "+
			"not supported", len(serialized))
		return nil, makeError(ErrPubKeyInvalidLen, str)
	}

	var x, y FieldVal
	if overflow := x.SetByteSlice(serialized); overflow {
		str := "invalid x-only public key: x >= field prime"
		return nil, makeError(ErrPubKeyXTooBig, str)
	}
	if valid := DecompressY(&x, false, &y); !valid {
		str := "invalid x-only public key: x coordinate is not on the curve"
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}
	return NewPublicKey(&x, &y), nil
}

// SerializeUncompressed serializes a public key in the uncompressed format.
func (p PublicKey) SerializeUncompressed() []byte {
	var b [PubKeyBytesLenUncompressed]byte
	b[0] = pubkeyUncompressed
	x := p.X
	y := p.Y
	x.Normalize().PutBytesUnchecked(b[1:33])
	y.Normalize().PutBytesUnchecked(b[33:65])
	return b[:]
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.
func (p PublicKey) SerializeCompressed() []byte {
	var b [PubKeyBytesLenCompressed]byte
	format := pubkeyCompressed
	y := p.Y
	if y.Normalize().IsOdd() {
		format |= 0x1
	}
	b[0] = format
	x := p.X
	x.Normalize().PutBytesUnchecked(b[1:33])
	return b[:]
}

// SerializeXOnly serializes the x-only, 32-byte representation of the
// public key used by BIP 340 Schnorr signatures.  This silently discards
// any information about which of the two possible y coordinates the key
// actually uses, which is the entire point of the x-only format.
func (p PublicKey) SerializeXOnly() []byte {
	var b [PubKeyBytesLenXOnly]byte
	x := p.X
	x.Normalize().PutBytesUnchecked(b[:])
	return b[:]
}

// IsEqual compares this public key instance to the one passed, returning
// true if both public keys are equivalent.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return p.X.Equals(&otherPubKey.X) && p.Y.Equals(&otherPubKey.Y)
}
