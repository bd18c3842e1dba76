// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/proofd/fault"
)

// HashLength - number of bytes in a proof hash
const HashLength = 32

// separator between location and secret in a presence hash
const locationSeparator = "|"

// Hash - the content commitment key
type Hash [HashLength]byte

// Keccak256 - legacy Keccak-256 of arbitrary data
func Keccak256(data []byte) Hash {
	var h Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	hasher.Sum(h[:0])
	return h
}

// PresenceHash - commitment to a location and a shared secret
func PresenceHash(location string, secret string) Hash {
	return Keccak256([]byte(location + locationSeparator + secret))
}

// HashFromBytes - copy a byte slice that must be exactly HashLength
func HashFromBytes(buffer []byte) (Hash, error) {
	var h Hash
	if HashLength != len(buffer) {
		return h, fault.InvalidHashLength
	}
	copy(h[:], buffer)
	return h, nil
}

// HashFromBase58 - decode the text form
func HashFromBase58(s string) (Hash, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Hash{}, fault.InvalidHashLength
	}
	return HashFromBytes(buffer)
}

// Bytes - the storage key form
func (h Hash) Bytes() []byte {
	return h[:]
}

// String - base58 text
func (h Hash) String() string {
	return base58.Encode(h[:])
}

// GoString - for %#v
func (h Hash) GoString() string {
	return "<proof:" + h.String() + ">"
}

// MarshalText - convert hash to base58 text
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - convert base58 text to a hash
func (h *Hash) UnmarshalText(s []byte) error {
	v, err := HashFromBase58(string(s))
	if nil != err {
		return err
	}
	*h = v
	return nil
}
