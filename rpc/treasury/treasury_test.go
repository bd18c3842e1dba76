// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasury_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/fixtures"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/registry"
	registrymocks "github.com/bitmark-inc/proofd/registry/mocks"
	"github.com/bitmark-inc/proofd/rpc/mocks"
	"github.com/bitmark-inc/proofd/rpc/signed"
	"github.com/bitmark-inc/proofd/rpc/treasury"
)

func isTesting() bool { return true }

func signedArguments(t *testing.T, key *account.PrivateKey, nonce uint64) *treasury.WithdrawArguments {
	arguments := &treasury.WithdrawArguments{}
	header, err := signed.Sign(key, treasury.WithdrawMethod, nonce, arguments.Payload())
	require.Nil(t, err, "sign error")
	arguments.Header = header
	return arguments
}

func TestWithdraw(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	c := mocks.NewMockContract(ctl)
	env := registrymocks.NewMockEnvironment(ctl)

	key, err := account.NewPrivateKey(true)
	require.Nil(t, err, "new key error")
	caller := key.Account().String()

	surplus := amount.MustFromString("123000000000000000000")

	l.EXPECT().CheckNonce(caller, uint64(9)).Return(nil).Times(1)
	l.EXPECT().Execute(caller, amount.Zero, gomock.Any()).DoAndReturn(
		func(_ string, _ amount.Amount, method func(registry.Environment) error) (*ledger.Outcome, error) {
			return &ledger.Outcome{}, method(env)
		}).Times(1)
	c.EXPECT().Withdraw(env).Return(surplus, nil).Times(1)

	s := treasury.New(logger.New(fixtures.LogCategory), l, c, isTesting)

	var reply treasury.WithdrawReply
	err = s.Withdraw(signedArguments(t, key, 9), &reply)
	assert.Nil(t, err, "wrong Withdraw")
	assert.Equal(t, surplus, reply.Amount, "wrong amount")
}

func TestWithdrawBelowReserve(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	c := mocks.NewMockContract(ctl)

	key, err := account.NewPrivateKey(true)
	require.Nil(t, err, "new key error")
	caller := key.Account().String()

	l.EXPECT().CheckNonce(caller, uint64(1)).Return(nil).Times(1)
	l.EXPECT().Execute(caller, amount.Zero, gomock.Any()).DoAndReturn(
		func(_ string, _ amount.Amount, method func(registry.Environment) error) (*ledger.Outcome, error) {
			if err := method(nil); nil != err {
				return nil, err
			}
			return &ledger.Outcome{}, nil
		}).Times(1)
	c.EXPECT().Withdraw(nil).Return(amount.Zero, fault.InsufficientReserve).Times(1)

	s := treasury.New(logger.New(fixtures.LogCategory), l, c, isTesting)

	var reply treasury.WithdrawReply
	err = s.Withdraw(signedArguments(t, key, 1), &reply)
	assert.Equal(t, fault.InsufficientReserve, err, "wrong error")
	assert.True(t, reply.Amount.IsZero(), "amount set on error")
}

func TestWithdrawUnsigned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := treasury.New(logger.New(fixtures.LogCategory), mocks.NewMockLedger(ctl), mocks.NewMockContract(ctl), isTesting)

	var reply treasury.WithdrawReply
	err := s.Withdraw(&treasury.WithdrawArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}
