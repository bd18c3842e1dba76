// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the proof registry contract
//
// proofs are created by Store, revoked by Terminate and queried by
// Validate; the owner fixed at initialisation may Withdraw any balance
// not needed to pay for the storage the contract occupies
//
// every mutating method must run inside an open storage transaction;
// on error the caller aborts it so no partial state survives
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/proof"
	"github.com/bitmark-inc/proofd/rent"
	"github.com/bitmark-inc/proofd/storage"
)

// key of the owner record in the state pool
var ownerKey = []byte("owner")

// Clock - source of the current block time in nanoseconds
type Clock interface {
	BlockTimestamp() uint64
}

// Environment - capabilities of a single contract call
type Environment interface {
	rent.Environment
	Clock
	AccountBalance() amount.Amount
}

// Contract - the operations of a registry as seen by its callers
type Contract interface {
	Owner() string
	Store(env Environment, hash proof.Hash, timeoutSeconds *uint32) (uint64, error)
	Terminate(env Environment, hash proof.Hash) error
	Validate(clock Clock, hash proof.Hash) (proof.Status, error)
	Withdraw(env Environment) (amount.Amount, error)
}

var _ Contract = (*Registry)(nil)

// Handles - storage pools used by the contract
type Handles struct {
	State            storage.Handle
	Proofs           storage.Handle
	TerminatedProofs storage.Handle
}

// Registry - contract state
type Registry struct {
	log        *logger.L
	state      storage.Handle
	active     storage.Handle
	terminated storage.Handle
	owner      string
}

// Initialise - record the owner; fails if already done
func Initialise(log *logger.L, handles Handles, owner string) (*Registry, error) {
	if "" == owner {
		return nil, fault.MissingParameters
	}
	if handles.State.Has(ownerKey) {
		return nil, fault.AlreadyInitialised
	}

	handles.State.Put(ownerKey, []byte(owner))

	log.Infof("initialised with owner: %s", owner)

	return newRegistry(log, handles, owner), nil
}

// Load - open a previously initialised contract
func Load(log *logger.L, handles Handles) (*Registry, error) {
	owner := handles.State.Get(ownerKey)
	if nil == owner {
		return nil, fault.NotInitialised
	}

	log.Infof("loaded with owner: %s", owner)

	return newRegistry(log, handles, string(owner)), nil
}

func newRegistry(log *logger.L, handles Handles, owner string) *Registry {
	return &Registry{
		log:        log,
		state:      handles.State,
		active:     handles.Proofs,
		terminated: handles.TerminatedProofs,
		owner:      owner,
	}
}

// Owner - the account allowed to withdraw
func (r *Registry) Owner() string {
	return r.owner
}

// reject deposits on methods that do not charge
func assertNotPayable(env Environment) error {
	if !env.AttachedDeposit().IsZero() {
		return fault.DepositNotAccepted
	}
	return nil
}
