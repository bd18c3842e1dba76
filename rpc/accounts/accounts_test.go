// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts_test

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
	"github.com/bitmark-inc/proofd/rpc/accounts"
	"github.com/bitmark-inc/proofd/rpc/mocks"
)

const contract = "proofs.testnet"

func isTesting() bool { return true }

func TestBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key, err := account.NewPrivateKey(true)
	require.Nil(t, err, "new key error")
	name := key.Account().String()
	balance := amount.MustFromString("10000000000000000000000000")

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Contract().Return(contract).Times(1)
	l.EXPECT().Balance(name).Return(balance).Times(1)
	l.EXPECT().Nonce(name).Return(uint64(4)).Times(1)

	a := accounts.New(logger.New(fixtures.LogCategory), l, isTesting)

	var reply accounts.BalanceReply
	err = a.Balance(&accounts.BalanceArguments{Account: name}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, name, reply.Account, "wrong account")
	assert.Equal(t, balance, reply.Balance, "wrong balance")
	assert.Equal(t, uint64(4), reply.Nonce, "wrong nonce")
}

func TestBalanceContract(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Contract().Return(contract).Times(1)
	l.EXPECT().Balance(contract).Return(amount.New(99)).Times(1)
	l.EXPECT().Nonce(contract).Return(uint64(0)).Times(1)

	a := accounts.New(logger.New(fixtures.LogCategory), l, isTesting)

	var reply accounts.BalanceReply
	err := a.Balance(&accounts.BalanceArguments{Account: contract}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, amount.New(99), reply.Balance, "wrong balance")
}

func TestBalanceBadAccount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	live, err := account.NewPrivateKey(false)
	require.Nil(t, err, "new key error")

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Contract().Return(contract).AnyTimes()

	a := accounts.New(logger.New(fixtures.LogCategory), l, isTesting)

	var reply accounts.BalanceReply
	err = a.Balance(&accounts.BalanceArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong empty error")

	err = a.Balance(&accounts.BalanceArguments{Account: "not-base58!"}, &reply)
	assert.Equal(t, fault.CannotDecodeAccount, err, "wrong decode error")

	err = a.Balance(&accounts.BalanceArguments{Account: live.Account().String()}, &reply)
	assert.Equal(t, fault.AccountMismatch, err, "wrong network error")
}
