// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fixtures"
	"github.com/bitmark-inc/proofd/proof"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/registry/mocks"
	"github.com/bitmark-inc/proofd/storage"
)

const (
	issuer  = "alice.testnet"
	visitor = "bob.testnet"
	owner   = "carol.testnet"

	createdAt = uint64(123456)
)

var byteCost = amount.MustFromString("10000000000000000000")

func handles() registry.Handles {
	return registry.Handles{
		State:            storage.Pool.State,
		Proofs:           storage.Pool.Proofs,
		TerminatedProofs: storage.Pool.TerminatedProofs,
	}
}

// open a fresh database and initialise the contract
func setup(t *testing.T) *registry.Registry {
	fixtures.SetupTestLogger()

	database := filepath.Join(t.TempDir(), "registry.leveldb")
	if err := storage.Initialise(database, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	var r *registry.Registry
	err := call(func() error {
		var err error
		r, err = registry.Initialise(logger.New(fixtures.LogCategory), handles(), owner)
		return err
	})
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
	return r
}

func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

// run one contract call in its own transaction
func call(f func() error) error {
	if err := storage.Begin(); nil != err {
		return err
	}
	if err := f(); nil != err {
		storage.Abort()
		return err
	}
	return storage.Commit()
}

// environment backed by the real storage meter
func newEnv(ctl *gomock.Controller, caller string, deposit amount.Amount, now uint64) *mocks.MockEnvironment {
	env := mocks.NewMockEnvironment(ctl)
	env.EXPECT().Predecessor().Return(caller).AnyTimes()
	env.EXPECT().AttachedDeposit().Return(deposit).AnyTimes()
	env.EXPECT().BlockTimestamp().Return(now).AnyTimes()
	env.EXPECT().StorageUsage().DoAndReturn(storage.Usage).AnyTimes()
	env.EXPECT().StorageByteCost().Return(byteCost).AnyTimes()
	return env
}

func clockAt(ctl *gomock.Controller, now uint64) *mocks.MockClock {
	clock := mocks.NewMockClock(ctl)
	clock.EXPECT().BlockTimestamp().Return(now).AnyTimes()
	return clock
}

func testHash() proof.Hash {
	return proof.Keccak256([]byte("12345"))
}

// exact price of storing one record
func storeCost(t *testing.T, hash proof.Hash, caller string, now uint64, timeout *uint32) amount.Amount {
	packed, err := proof.NewRecord(caller, now, timeout).Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	c, err := byteCost.MulUint64(storage.RecordCost(hash.Bytes(), packed))
	if nil != err {
		t.Fatalf("cost error: %s", err)
	}
	return c
}
