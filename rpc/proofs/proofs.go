// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofs

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/proof"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/rpc/ratelimit"
	"github.com/bitmark-inc/proofd/rpc/signed"
)

const (
	rateLimitProofs = 200
	rateBurstProofs = 100

	rateLimitCaller = 10
	rateBurstCaller = 20
)

// method names used when signing
const (
	StoreMethod     = "Proofs.Store"
	TerminateMethod = "Proofs.Terminate"
)

// Proofs - type for RPC calls
type Proofs struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Callers   *ratelimit.PerKey
	Ledger    ledger.Ledger
	Contract  registry.Contract
	IsTesting func() bool
}

// New - create the proofs service
func New(log *logger.L, l ledger.Ledger, contract registry.Contract, isTestingFunc func() bool) *Proofs {
	return &Proofs{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitProofs, rateBurstProofs),
		Callers:   ratelimit.NewPerKey(rateLimitCaller, rateBurstCaller),
		Ledger:    l,
		Contract:  contract,
		IsTesting: isTestingFunc,
	}
}

// authenticate a signed request and consume its nonce
func (p *Proofs) authenticate(header *signed.Header, method string, payload []interface{}) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if _, err := header.Verify(method, payload, p.IsTesting()); nil != err {
		p.Log.Debugf("%s: caller: %q verify error: %s", method, header.Caller, err)
		return err
	}
	if err := p.Callers.Limit(header.Caller); nil != err {
		return err
	}
	return p.Ledger.CheckNonce(header.Caller, header.Nonce)
}

// ---

// StoreArguments - arguments for RPC
type StoreArguments struct {
	Header  signed.Header `json:"header"`
	Hash    proof.Hash    `json:"hash"`
	Timeout *uint32       `json:"timeout"`
	Deposit amount.Amount `json:"deposit"`
}

// Payload - the signed part of the arguments
func (arguments *StoreArguments) Payload() []interface{} {
	var timeout interface{}
	if nil != arguments.Timeout {
		timeout = uint64(*arguments.Timeout)
	}
	return []interface{}{arguments.Hash.Bytes(), timeout, arguments.Deposit.String()}
}

// StoreReply - result from RPC
type StoreReply struct {
	CreatedAt uint64        `json:"createdAt,string"`
	Refund    amount.Amount `json:"refund"`
}

// Store - record a proof for the calling account
func (p *Proofs) Store(arguments *StoreArguments, reply *StoreReply) error {
	if err := p.authenticate(&arguments.Header, StoreMethod, arguments.Payload()); nil != err {
		return err
	}

	var createdAt uint64
	outcome, err := p.Ledger.Execute(arguments.Header.Caller, arguments.Deposit, func(env registry.Environment) error {
		var err error
		createdAt, err = p.Contract.Store(env, arguments.Hash, arguments.Timeout)
		return err
	})
	if nil != err {
		return err
	}

	reply.CreatedAt = createdAt
	reply.Refund = refundTo(outcome, arguments.Header.Caller)

	return nil
}

// sum of receipts paid back to the caller
func refundTo(outcome *ledger.Outcome, caller string) amount.Amount {
	total := amount.Zero
	if nil == outcome {
		return total
	}
	for _, r := range outcome.Receipts {
		if r.Receiver != caller {
			continue
		}
		if t, err := total.Add(r.Amount); nil == err {
			total = t
		}
	}
	return total
}

// ---

// TerminateArguments - arguments for RPC
type TerminateArguments struct {
	Header signed.Header `json:"header"`
	Hash   proof.Hash    `json:"hash"`
}

// Payload - the signed part of the arguments
func (arguments *TerminateArguments) Payload() []interface{} {
	return []interface{}{arguments.Hash.Bytes()}
}

// TerminateReply - result from RPC
type TerminateReply struct{}

// Terminate - revoke a proof, only its issuer may do this
func (p *Proofs) Terminate(arguments *TerminateArguments, reply *TerminateReply) error {
	if err := p.authenticate(&arguments.Header, TerminateMethod, arguments.Payload()); nil != err {
		return err
	}

	_, err := p.Ledger.Execute(arguments.Header.Caller, amount.Zero, func(env registry.Environment) error {
		return p.Contract.Terminate(env, arguments.Hash)
	})
	return err
}

// ---

// ValidateArguments - arguments for RPC
type ValidateArguments struct {
	Hash proof.Hash `json:"hash"`
}

// Validate - status of a proof, anyone may ask
//
// the reply is the bare status union: "Invalid" or {"<Kind>": view}
func (p *Proofs) Validate(arguments *ValidateArguments, reply *proof.Status) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	return p.Ledger.View(func(clock registry.Clock) error {
		status, err := p.Contract.Validate(clock, arguments.Hash)
		if nil != err {
			return err
		}
		*reply = status
		return nil
	})
}
