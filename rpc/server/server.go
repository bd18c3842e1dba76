// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/counter"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/rpc/accounts"
	"github.com/bitmark-inc/proofd/rpc/node"
	"github.com/bitmark-inc/proofd/rpc/proofs"
	"github.com/bitmark-inc/proofd/rpc/treasury"
)

// Services - one instance of each RPC service
type Services struct {
	Proofs   *proofs.Proofs
	Treasury *treasury.Treasury
	Accounts *accounts.Accounts
	Node     *node.Node
}

// NewServices - create all services over the ledger and contract
func NewServices(log *logger.L, version string, rpcCount *counter.Counter, l ledger.Ledger, contract registry.Contract, isTestingFunc func() bool) *Services {
	start := time.Now().UTC()
	return &Services{
		Proofs:   proofs.New(log, l, contract, isTestingFunc),
		Treasury: treasury.New(log, l, contract, isTestingFunc),
		Accounts: accounts.New(log, l, isTestingFunc),
		Node:     node.New(log, start, version, rpcCount, l, contract),
	}
}

// Create - an RPC server with all services registered
func Create(services *Services) *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(services.Proofs)
	_ = server.Register(services.Treasury)
	_ = server.Register(services.Accounts)
	_ = server.Register(services.Node)

	return server
}
