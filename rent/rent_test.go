// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rent_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/rent"
	"github.com/bitmark-inc/proofd/rent/mocks"
)

const (
	issuer   = "alice.testnet"
	byteCost = "10000000000000000000"
)

// storage usage seen before and after the update
func expectUsage(env *mocks.MockEnvironment, before uint64, after uint64) {
	gomock.InOrder(
		env.EXPECT().StorageUsage().Return(before).Times(1),
		env.EXPECT().StorageUsage().Return(after).Times(1),
	)
}

func cost(bytes uint64) amount.Amount {
	c, _ := amount.MustFromString(byteCost).MulUint64(bytes)
	return c
}

func TestExactPayment(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	env := mocks.NewMockEnvironment(ctl)
	expectUsage(env, 1000, 1099)
	env.EXPECT().StorageByteCost().Return(amount.MustFromString(byteCost)).AnyTimes()
	env.EXPECT().AttachedDeposit().Return(cost(99)).Times(1)

	updated := false
	receipt, err := rent.AssertPayment(env, func() error {
		updated = true
		return nil
	})

	assert.Nil(t, err, "wrong error")
	assert.True(t, updated, "update not run")
	assert.Equal(t, uint64(99), receipt.Bytes, "wrong bytes")
	assert.Equal(t, cost(99), receipt.Cost, "wrong cost")
	assert.True(t, receipt.Refund.IsZero(), "unexpected refund")
}

func TestOverpaymentRefunded(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	deposit := amount.MustFromString("5000000000000000000000000")
	refund, _ := deposit.Sub(cost(107))

	env := mocks.NewMockEnvironment(ctl)
	expectUsage(env, 1000, 1107)
	env.EXPECT().StorageByteCost().Return(amount.MustFromString(byteCost)).AnyTimes()
	env.EXPECT().AttachedDeposit().Return(deposit).Times(1)
	env.EXPECT().Predecessor().Return(issuer).Times(1)
	env.EXPECT().Transfer(issuer, refund).Times(1)

	receipt, err := rent.AssertPayment(env, func() error { return nil })
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, refund, receipt.Refund, "wrong refund")
}

func TestUnderpayment(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	short, _ := cost(99).Sub(amount.New(1))

	env := mocks.NewMockEnvironment(ctl)
	expectUsage(env, 1000, 1099)
	env.EXPECT().StorageByteCost().Return(amount.MustFromString(byteCost)).AnyTimes()
	env.EXPECT().AttachedDeposit().Return(short).Times(1)
	env.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)

	_, err := rent.AssertPayment(env, func() error { return nil })
	assert.True(t, errors.Is(err, fault.InsufficientPayment), "wrong error: %v", err)
	assert.Equal(t, "requires 990000000000000000000 attached", err.Error(), "wrong message")
}

func TestUpdateErrorPassesThrough(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	env := mocks.NewMockEnvironment(ctl)
	env.EXPECT().StorageUsage().Return(uint64(1000)).Times(1)
	env.EXPECT().AttachedDeposit().Times(0)
	env.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)

	_, err := rent.AssertPayment(env, func() error { return fault.ProofAlreadyExists })
	assert.Equal(t, fault.ProofAlreadyExists, err, "wrong error")
}

func TestShrinkIsFree(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	deposit := amount.New(25)

	env := mocks.NewMockEnvironment(ctl)
	expectUsage(env, 1000, 900)
	env.EXPECT().StorageByteCost().Return(amount.MustFromString(byteCost)).AnyTimes()
	env.EXPECT().AttachedDeposit().Return(deposit).Times(1)
	env.EXPECT().Predecessor().Return(issuer).Times(1)
	env.EXPECT().Transfer(issuer, deposit).Times(1)

	receipt, err := rent.AssertPayment(env, func() error { return nil })
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint64(0), receipt.Bytes, "shrink charged")
	assert.True(t, receipt.Cost.IsZero(), "shrink charged")
}

func TestNoGrowthNoDeposit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	env := mocks.NewMockEnvironment(ctl)
	expectUsage(env, 1000, 1000)
	env.EXPECT().StorageByteCost().Return(amount.MustFromString(byteCost)).AnyTimes()
	env.EXPECT().AttachedDeposit().Return(amount.Zero).Times(1)
	env.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)

	_, err := rent.AssertPayment(env, func() error { return nil })
	assert.Nil(t, err, "wrong error")
}

func TestCost(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	meter := mocks.NewMockMeter(ctl)
	meter.EXPECT().StorageByteCost().Return(amount.MustFromString(byteCost)).Times(1)

	c, err := rent.Cost(meter, 107)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "1070000000000000000000", c.String(), "wrong cost")
}
