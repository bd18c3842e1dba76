// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasury

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/rpc/ratelimit"
	"github.com/bitmark-inc/proofd/rpc/signed"
)

const (
	rateLimitTreasury = 5
	rateBurstTreasury = 5
)

// WithdrawMethod - method name used when signing
const WithdrawMethod = "Treasury.Withdraw"

// Treasury - type for RPC calls
type Treasury struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ledger    ledger.Ledger
	Contract  registry.Contract
	IsTesting func() bool
}

// New - create the treasury service
func New(log *logger.L, l ledger.Ledger, contract registry.Contract, isTestingFunc func() bool) *Treasury {
	return &Treasury{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitTreasury, rateBurstTreasury),
		Ledger:    l,
		Contract:  contract,
		IsTesting: isTestingFunc,
	}
}

// WithdrawArguments - arguments for RPC
type WithdrawArguments struct {
	Header signed.Header `json:"header"`
}

// Payload - the signed part of the arguments
func (arguments *WithdrawArguments) Payload() []interface{} {
	return nil
}

// WithdrawReply - result from RPC
type WithdrawReply struct {
	Amount amount.Amount `json:"amount"`
}

// Withdraw - send the contract balance above its storage reserve to
// the owner
func (t *Treasury) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	header := &arguments.Header
	if _, err := header.Verify(WithdrawMethod, arguments.Payload(), t.IsTesting()); nil != err {
		t.Log.Debugf("withdraw: caller: %q verify error: %s", header.Caller, err)
		return err
	}
	if err := t.Ledger.CheckNonce(header.Caller, header.Nonce); nil != err {
		return err
	}

	var withdrawn amount.Amount
	_, err := t.Ledger.Execute(header.Caller, amount.Zero, func(env registry.Environment) error {
		var err error
		withdrawn, err = t.Contract.Withdraw(env)
		return err
	})
	if nil != err {
		return err
	}

	reply.Amount = withdrawn
	return nil
}
