// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/storage"
)

// balance exactly covering current storage plus extra
func balanceWith(t *testing.T, extra amount.Amount) amount.Amount {
	reserve, err := byteCost.MulUint64(storage.Usage())
	if nil != err {
		t.Fatalf("reserve error: %s", err)
	}
	b, err := reserve.Add(extra)
	if nil != err {
		t.Fatalf("balance error: %s", err)
	}
	return b
}

func TestWithdrawNotOwner(t *testing.T) {
	r := setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	env := newEnv(ctl, visitor, amount.Zero, createdAt)
	env.EXPECT().AccountBalance().Return(balanceWith(t, amount.New(1000))).AnyTimes()
	env.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)

	_, err := r.Withdraw(env)
	assert.Equal(t, fault.NotContractOwner, err, "visitor withdrew")
	assert.True(t, fault.IsErrPermission(err), "wrong error class")
}

func TestWithdrawSurplus(t *testing.T) {
	r := setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// add a proof so the reserve covers more than the owner record
	hash := testHash()
	err := call(func() error {
		_, err := r.Store(newEnv(ctl, issuer, storeCost(t, hash, issuer, createdAt, nil), createdAt), hash, nil)
		return err
	})
	assert.Nil(t, err, "wrong store error")

	surplus := amount.MustFromString("4990000000000000000000000")

	env := newEnv(ctl, owner, amount.Zero, createdAt)
	env.EXPECT().AccountBalance().Return(balanceWith(t, surplus)).Times(1)
	env.EXPECT().Transfer(owner, surplus).Times(1)

	withdrawn, err := r.Withdraw(env)
	assert.Nil(t, err, "wrong withdraw error")
	assert.Equal(t, surplus, withdrawn, "wrong amount")
}

func TestWithdrawNothing(t *testing.T) {
	r := setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	env := newEnv(ctl, owner, amount.Zero, createdAt)
	env.EXPECT().AccountBalance().Return(balanceWith(t, amount.Zero)).Times(1)
	env.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)

	withdrawn, err := r.Withdraw(env)
	assert.Nil(t, err, "wrong withdraw error")
	assert.True(t, withdrawn.IsZero(), "withdrew from reserve")
}

func TestWithdrawBelowReserve(t *testing.T) {
	r := setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	short, _ := balanceWith(t, amount.Zero).Sub(amount.New(1))

	env := newEnv(ctl, owner, amount.Zero, createdAt)
	env.EXPECT().AccountBalance().Return(short).Times(1)
	env.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)

	_, err := r.Withdraw(env)
	assert.Equal(t, fault.InsufficientReserve, err, "wrong error")
	assert.True(t, fault.IsErrPayment(err), "wrong error class")
}

func TestWithdrawRejectsDeposit(t *testing.T) {
	r := setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	env := newEnv(ctl, owner, amount.New(1), createdAt)

	_, err := r.Withdraw(env)
	assert.Equal(t, fault.DepositNotAccepted, err, "deposit accepted")
}

func TestReserve(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	env := newEnv(ctl, owner, amount.Zero, createdAt)
	reserve, err := registry.Reserve(env)
	assert.Nil(t, err, "wrong error")

	// only the owner record is stored
	expected, _ := byteCost.MulUint64(storage.RecordCost([]byte("owner"), []byte(owner)))
	assert.Equal(t, expected, reserve, "wrong reserve")
}
