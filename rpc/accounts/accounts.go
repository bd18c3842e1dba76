// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/rpc/ratelimit"
)

const (
	rateLimitAccounts = 200
	rateBurstAccounts = 100
)

// Accounts - type for RPC calls
type Accounts struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ledger    ledger.Ledger
	IsTesting func() bool
}

// New - create the accounts service
func New(log *logger.L, l ledger.Ledger, isTestingFunc func() bool) *Accounts {
	return &Accounts{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitAccounts, rateBurstAccounts),
		Ledger:    l,
		IsTesting: isTestingFunc,
	}
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Account string `json:"account"`
}

// BalanceReply - result from RPC
type BalanceReply struct {
	Account string        `json:"account"`
	Balance amount.Amount `json:"balance"`
	Nonce   uint64        `json:"nonce,string"`
}

// Balance - committed balance and last nonce of an account
//
// the contract account name is accepted as well as key accounts
func (a *Accounts) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if "" == arguments.Account {
		return fault.MissingParameters
	}

	if arguments.Account != a.Ledger.Contract() {
		acc, err := account.FromBase58(arguments.Account)
		if nil != err {
			return err
		}
		if acc.IsTesting() != a.IsTesting() {
			return fault.AccountMismatch
		}
	}

	reply.Account = arguments.Account
	reply.Balance = a.Ledger.Balance(arguments.Account)
	reply.Nonce = a.Ledger.Nonce(arguments.Account)

	return nil
}
