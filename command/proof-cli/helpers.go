// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"crypto/sha256"
	"math/big"
	"os"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/proofd/proof"
)

const (
	secretLength = 32

	// printable ASCII excluding space
	firstPrintable = '!'
	lastPrintable  = '~'
)

// random printable secret
func makeSecret(length int) (string, error) {
	span := big.NewInt(lastPrintable - firstPrintable + 1)
	buffer := make([]byte, length)
	for i := range buffer {
		n, err := rand.Int(rand.Reader, span)
		if nil != err {
			return "", err
		}
		buffer[i] = byte(firstPrintable + n.Int64())
	}
	return string(buffer), nil
}

// base58 of keccak256("location|secret")
func presenceHash(location string, secret string) string {
	return proof.PresenceHash(location, secret).String()
}

func encodeBase58(value string) string {
	return base58.Encode([]byte(value))
}

// base58 of the SHA-256 of a binary, compared against a deployed code hash
func codeHash(filename string) (string, error) {
	binary, err := os.ReadFile(filename)
	if nil != err {
		return "", err
	}
	digest := sha256.Sum256(binary)
	return base58.Encode(digest[:]), nil
}
