// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// all records live in one LevelDB database; each pool is a key space
// selected by a single byte prefix
//
// contract pools (metered: their bytes count towards storage usage)
//
//   S - State              key: "owner"                 value: account string
//   P - Proofs             key: 32 byte hash            value: CBOR record
//   T - TerminatedProofs   key: 32 byte hash            value: CBOR record
//
// host pools (not metered)
//
//   B - Balances           key: account string          value: 32 byte BE amount
//   N - Nonces             key: account string          value: 8 byte BE nonce
//   R - Receipts           key: 16 byte UUID            value: CBOR receipt
//   H - Host               key: marker name             value: marker data
//
// test pool
//
//   Z - TestData (metered)
//
// reserved keys (0x00 prefix)
//
//   0x00 "VERSION"         4 byte BE database version
//   0x00 "USAGE"           8 byte BE metered byte count
//
// every write happens inside the single transaction opened by Begin;
// reads inside the transaction see its pending puts and deletes
package storage
