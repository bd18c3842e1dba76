// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/proofd/fault"
)

// seed text layout: header || network || seed || checksum
var seedHeader = []byte{0x5a, 0xfe, 0x03}

const (
	seedLength    = ed25519.SeedSize
	seedLiveNet   = 0x00
	seedTestNet   = 0x01
	seedTextBytes = 3 + 1 + seedLength + checksumLength
)

// PrivateKey - signing key derived from a 32 byte seed
type PrivateKey struct {
	Test       bool
	seed       []byte
	privateKey ed25519.PrivateKey
}

// NewPrivateKey - create a key from fresh random seed
func NewPrivateKey(testnet bool) (*PrivateKey, error) {
	seed := make([]byte, seedLength)
	if _, err := io.ReadFull(rand.Reader, seed); nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed, testnet)
}

// PrivateKeyFromSeed - derive the ed25519 key from raw seed bytes
func PrivateKeyFromSeed(seed []byte, testnet bool) (*PrivateKey, error) {
	if seedLength != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	s := make([]byte, seedLength)
	copy(s, seed)
	return &PrivateKey{
		Test:       testnet,
		seed:       s,
		privateKey: ed25519.NewKeyFromSeed(s),
	}, nil
}

// PrivateKeyFromBase58Seed - decode the seed text form
func PrivateKeyFromBase58Seed(s string) (*PrivateKey, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.CannotDecodeAccount
	}
	if seedTextBytes != len(decoded) {
		return nil, fault.InvalidKeyLength
	}
	if !bytes.Equal(seedHeader, decoded[:len(seedHeader)]) {
		return nil, fault.NotPrivateKey
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	testnet := false
	switch decoded[len(seedHeader)] {
	case seedLiveNet:
	case seedTestNet:
		testnet = true
	default:
		return nil, fault.InvalidChain
	}

	return PrivateKeyFromSeed(decoded[len(seedHeader)+1:checksumStart], testnet)
}

// Seed - the checksummed base58 seed text
func (privateKey *PrivateKey) Seed() string {
	buffer := make([]byte, 0, seedTextBytes)
	buffer = append(buffer, seedHeader...)
	if privateKey.Test {
		buffer = append(buffer, seedTestNet)
	} else {
		buffer = append(buffer, seedLiveNet)
	}
	buffer = append(buffer, privateKey.seed...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// SeedBytes - raw seed
func (privateKey *PrivateKey) SeedBytes() []byte {
	return privateKey.seed
}

// Account - the public half
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		Test:      privateKey.Test,
		PublicKey: privateKey.privateKey.Public().(ed25519.PublicKey),
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}
