// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/fixtures"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/proof"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/storage"
)

const (
	contract = "proofs.testnet"
	issuer   = "alice.testnet"
	visitor  = "bob.testnet"
	owner    = "carol.testnet"

	createdAt = uint64(123456)
)

var (
	byteCost      = amount.MustFromString("10000000000000000000")
	tenNear       = amount.MustFromString("10000000000000000000000000")
	fiveNear      = amount.MustFromString("5000000000000000000000000")
	contractFunds = amount.MustFromString("1000000000000000000000000")
)

func configuration() ledger.Configuration {
	return ledger.Configuration{
		Contract:        contract,
		StorageByteCost: byteCost,
		Genesis: map[string]amount.Amount{
			contract: contractFunds,
			issuer:   tenNear,
			visitor:  tenNear,
		},
	}
}

func handles() registry.Handles {
	return registry.Handles{
		State:            storage.Pool.State,
		Proofs:           storage.Pool.Proofs,
		TerminatedProofs: storage.Pool.TerminatedProofs,
	}
}

func fixedClock() uint64 {
	return createdAt
}

func setup(t *testing.T) (*ledger.Host, *registry.Registry) {
	fixtures.SetupTestLogger()

	database := filepath.Join(t.TempDir(), "ledger.leveldb")
	if err := storage.Initialise(database, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	h, err := ledger.New(log, configuration(), ledger.GlobalPools(), fixedClock)
	if nil != err {
		t.Fatalf("ledger new error: %s", err)
	}

	r, err := ledger.OpenRegistry(log, h, handles(), owner)
	if nil != err {
		t.Fatalf("open registry error: %s", err)
	}
	return h, r
}

func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func sub(t *testing.T, a amount.Amount, b amount.Amount) amount.Amount {
	r, ok := a.Sub(b)
	if !ok {
		t.Fatalf("%s - %s underflow", a, b)
	}
	return r
}

func add(t *testing.T, a amount.Amount, b amount.Amount) amount.Amount {
	r, err := a.Add(b)
	if nil != err {
		t.Fatalf("%s + %s error: %s", a, b, err)
	}
	return r
}

func testHash() proof.Hash {
	return proof.Keccak256([]byte("12345"))
}

func TestNewMissingContract(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := ledger.New(logger.New(fixtures.LogCategory), ledger.Configuration{}, ledger.Pools{}, nil)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestGenesisOnce(t *testing.T) {
	h, _ := setup(t)
	defer teardown()

	assert.Equal(t, tenNear, h.Balance(issuer), "wrong issuer balance")
	assert.Equal(t, amount.Zero, h.Balance(owner), "wrong owner balance")

	again, err := ledger.New(logger.New(fixtures.LogCategory), configuration(), ledger.GlobalPools(), fixedClock)
	assert.Nil(t, err, "second new error")
	assert.Equal(t, tenNear, again.Balance(issuer), "genesis applied twice")
}

func TestOpenRegistryExisting(t *testing.T) {
	h, r := setup(t)
	defer teardown()

	log := logger.New(fixtures.LogCategory)

	loaded, err := ledger.OpenRegistry(log, h, handles(), owner)
	assert.Nil(t, err, "reopen error")
	assert.Equal(t, r.Owner(), loaded.Owner(), "wrong owner")

	_, err = ledger.OpenRegistry(log, h, handles(), visitor)
	assert.Equal(t, fault.OwnerMismatch, err, "wrong error")
}

func TestStoreRefundsExcess(t *testing.T) {
	h, r := setup(t)
	defer teardown()

	hash := testHash()
	contractBefore := h.Balance(contract)
	usageBefore := h.StorageUsage()

	outcome, err := h.Execute(issuer, fiveNear, func(env registry.Environment) error {
		_, err := r.Store(env, hash, nil)
		return err
	})
	assert.Nil(t, err, "store error")
	assert.True(t, outcome.StorageDelta > 0, "storage did not grow")
	assert.Equal(t, usageBefore+uint64(outcome.StorageDelta), h.StorageUsage(), "wrong usage")

	cost, err := byteCost.MulUint64(uint64(outcome.StorageDelta))
	assert.Nil(t, err, "cost error")

	if assert.Equal(t, 1, len(outcome.Receipts), "wrong receipt count") {
		receipt := outcome.Receipts[0]
		assert.Equal(t, issuer, receipt.Receiver, "wrong receiver")
		assert.Equal(t, sub(t, fiveNear, cost), receipt.Amount, "wrong refund")
	}

	// refund is owed but not yet credited
	assert.Equal(t, sub(t, tenNear, fiveNear), h.Balance(issuer), "wrong issuer balance before settle")
	assert.Equal(t, add(t, contractBefore, cost), h.Balance(contract), "wrong contract balance")
	assert.Equal(t, 1, h.PendingReceipts(), "wrong pending")

	n, err := h.Settle()
	assert.Nil(t, err, "settle error")
	assert.Equal(t, 1, n, "wrong settled count")
	assert.Equal(t, 0, h.PendingReceipts(), "receipts remain")
	assert.Equal(t, sub(t, tenNear, cost), h.Balance(issuer), "wrong issuer balance after settle")

	n, err = h.Settle()
	assert.Nil(t, err, "second settle error")
	assert.Equal(t, 0, n, "settled twice")
}

func TestFailedCallRollsBack(t *testing.T) {
	h, r := setup(t)
	defer teardown()

	hash := testHash()
	store := func(env registry.Environment) error {
		_, err := r.Store(env, hash, nil)
		return err
	}

	_, err := h.Execute(issuer, fiveNear, store)
	assert.Nil(t, err, "first store error")
	_, err = h.Settle()
	assert.Nil(t, err, "settle error")

	issuerBalance := h.Balance(issuer)
	contractBalance := h.Balance(contract)
	usage := h.StorageUsage()

	_, err = h.Execute(issuer, fiveNear, store)
	assert.Equal(t, fault.ProofAlreadyExists, err, "wrong error")

	assert.Equal(t, issuerBalance, h.Balance(issuer), "deposit was kept")
	assert.Equal(t, contractBalance, h.Balance(contract), "contract balance changed")
	assert.Equal(t, usage, h.StorageUsage(), "usage changed")
	assert.Equal(t, 0, h.PendingReceipts(), "receipt issued")
}

func TestUnderpaidStore(t *testing.T) {
	h, r := setup(t)
	defer teardown()

	_, err := h.Execute(issuer, amount.New(1), func(env registry.Environment) error {
		_, err := r.Store(env, testHash(), nil)
		return err
	})
	assert.True(t, fault.IsErrPayment(err), "wrong error: %v", err)
	assert.Equal(t, tenNear, h.Balance(issuer), "deposit was kept")

	var status proof.Status
	err = h.View(func(clock registry.Clock) error {
		var err error
		status, err = r.Validate(clock, testHash())
		return err
	})
	assert.Nil(t, err, "validate error")
	assert.Equal(t, proof.Invalid, status.Kind, "proof was stored")
}

func TestDepositExceedsBalance(t *testing.T) {
	h, r := setup(t)
	defer teardown()

	_, err := h.Execute(owner, fiveNear, func(env registry.Environment) error {
		_, err := r.Store(env, testHash(), nil)
		return err
	})
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")
}

func TestLifecycleAcrossAccounts(t *testing.T) {
	h, r := setup(t)
	defer teardown()

	hash := testHash()

	_, err := h.Execute(issuer, fiveNear, func(env registry.Environment) error {
		_, err := r.Store(env, hash, nil)
		return err
	})
	assert.Nil(t, err, "store error")

	_, err = h.Execute(visitor, amount.Zero, func(env registry.Environment) error {
		return r.Terminate(env, hash)
	})
	assert.Equal(t, fault.NotProofIssuer, err, "visitor terminated proof")

	usage := h.StorageUsage()
	_, err = h.Execute(issuer, amount.Zero, func(env registry.Environment) error {
		return r.Terminate(env, hash)
	})
	assert.Nil(t, err, "terminate error")
	assert.Equal(t, usage, h.StorageUsage(), "terminate changed usage")

	err = h.View(func(clock registry.Clock) error {
		status, err := r.Validate(clock, hash)
		assert.Equal(t, proof.Terminated, status.Kind, "wrong status")
		return err
	})
	assert.Nil(t, err, "validate error")
}

func TestWithdrawSurplus(t *testing.T) {
	h, r := setup(t)
	defer teardown()

	_, err := h.Execute(issuer, fiveNear, func(env registry.Environment) error {
		_, err := r.Store(env, testHash(), nil)
		return err
	})
	assert.Nil(t, err, "store error")

	reserve, err := byteCost.MulUint64(h.StorageUsage())
	assert.Nil(t, err, "reserve error")
	expected := sub(t, h.Balance(contract), reserve)

	var withdrawn amount.Amount
	_, err = h.Execute(visitor, amount.Zero, func(env registry.Environment) error {
		_, err := r.Withdraw(env)
		return err
	})
	assert.Equal(t, fault.NotContractOwner, err, "visitor withdrew")

	outcome, err := h.Execute(owner, amount.Zero, func(env registry.Environment) error {
		var err error
		withdrawn, err = r.Withdraw(env)
		return err
	})
	assert.Nil(t, err, "withdraw error")
	assert.Equal(t, expected, withdrawn, "wrong amount")
	assert.Equal(t, reserve, h.Balance(contract), "contract keeps more than reserve")
	assert.Equal(t, 1, len(outcome.Receipts), "wrong receipt count")

	_, err = h.Settle()
	assert.Nil(t, err, "settle error")
	assert.Equal(t, expected, h.Balance(owner), "owner not paid")
}

func TestCheckNonce(t *testing.T) {
	h, _ := setup(t)
	defer teardown()

	assert.Equal(t, uint64(0), h.Nonce(issuer), "wrong initial nonce")
	assert.Equal(t, fault.InvalidNonce, h.CheckNonce(issuer, 0), "zero nonce accepted")
	assert.Nil(t, h.CheckNonce(issuer, 5), "first nonce rejected")
	assert.Equal(t, fault.InvalidNonce, h.CheckNonce(issuer, 5), "nonce replay accepted")
	assert.Equal(t, fault.InvalidNonce, h.CheckNonce(issuer, 4), "old nonce accepted")
	assert.Nil(t, h.CheckNonce(issuer, 6), "next nonce rejected")
	assert.Nil(t, h.CheckNonce(visitor, 1), "nonces are not per account")
	assert.Equal(t, uint64(6), h.Nonce(issuer), "wrong final nonce")
}

func TestTimestampsIncrease(t *testing.T) {
	h, _ := setup(t)
	defer teardown()

	noop := func(registry.Environment) error { return nil }

	first, err := h.Execute(issuer, amount.Zero, noop)
	assert.Nil(t, err, "first call error")
	second, err := h.Execute(issuer, amount.Zero, noop)
	assert.Nil(t, err, "second call error")

	assert.True(t, second.Timestamp > first.Timestamp, "timestamp did not advance")
	assert.True(t, first.Timestamp > createdAt, "timestamp before clock")
}
