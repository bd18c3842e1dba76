// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - proof records and their externally visible status
//
// a proof is a 32 byte commitment to some off-ledger content together
// with the account that issued it, the time it was recorded and an
// optional lifetime
package proof
