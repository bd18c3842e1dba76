// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/counter"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/mode"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Ledger   ledger.Ledger
	Contract registry.Contract
	counter  *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, l ledger.Ledger, contract registry.Contract) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Ledger:   l,
		Contract: contract,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain           string          `json:"chain"`
	Mode            string          `json:"mode"`
	Owner           string          `json:"owner"`
	Contract        ContractInfo    `json:"contract"`
	PendingReceipts int             `json:"pendingReceipts"`
	RPCs            ConnectionCount `json:"rpcs"`
	Version         string          `json:"version"`
	Uptime          string          `json:"uptime"`
}

// ContractInfo - funds and storage held by the contract account
type ContractInfo struct {
	Account         string        `json:"account"`
	Balance         amount.Amount `json:"balance"`
	StorageUsage    uint64        `json:"storageUsage,string"`
	StorageByteCost amount.Amount `json:"storageByteCost"`
	Reserve         amount.Amount `json:"reserve"`
}

// ConnectionCount - RPC connection gauge
type ConnectionCount struct {
	Current uint64 `json:"current"`
	Peak    uint64 `json:"peak"`
	Total   uint64 `json:"total"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	contract := node.Ledger.Contract()
	reserve, err := registry.Reserve(node.Ledger)
	if nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Owner = node.Contract.Owner()
	reply.Contract = ContractInfo{
		Account:         contract,
		Balance:         node.Ledger.Balance(contract),
		StorageUsage:    node.Ledger.StorageUsage(),
		StorageByteCost: node.Ledger.StorageByteCost(),
		Reserve:         reserve,
	}
	reply.PendingReceipts = node.Ledger.PendingReceipts()
	reply.RPCs = ConnectionCount{
		Current: node.counter.Uint64(),
		Peak:    node.counter.Peak(),
		Total:   node.counter.Total(),
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
