// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client access to the proof registry
//
// JSON RPC 1.0 over TLS using the net/rpc jsonrpc codec; the same
// services are reachable over HTTPS:
//
//	POST /proofd/rpc             JSON RPC request body
//	GET  /proofd/details         Node.Info, restricted by allow list
//	GET  /proofd/proofs/{hash}   Proofs.Validate for a base58 hash
//
// state changing methods take a signed header, see package signed
package rpc
