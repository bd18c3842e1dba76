// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/proofd/fault"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode  = 0x01
	testKeyCode    = 0x02
	algorithmShift = 4
)

// Account - an ed25519 public key with its network flag
//
// the base58 string form is the identity used by the ledger
type Account struct {
	Test      bool
	PublicKey ed25519.PublicKey
}

// FromBase58 - decode an account from its checksummed base58 form
func FromBase58(s string) (*Account, error) {
	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(decoded) <= 1+checksumLength {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return FromBytes(decoded[:checksumStart])
}

// FromBytes - decode an account from key variant + public key bytes
func FromBytes(buffer []byte) (*Account, error) {
	if 0 == len(buffer) {
		return nil, fault.InvalidKeyLength
	}

	keyVariant := buffer[0]
	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}
	if ed25519.PublicKeySize != len(buffer)-1 {
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, buffer[1:])

	return &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// Bytes - key variant followed by the public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of encoded key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// IsTesting - whether the key belongs to a test network
func (account *Account) IsTesting() bool {
	return account.Test
}

// CheckSignature - verify a message signed by this account
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// MarshalText - convert an account to its base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
