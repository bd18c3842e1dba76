// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/storage"
)

type transfer struct {
	receiver string
	value    amount.Amount
}

// call - the environment seen by one contract method
type call struct {
	host        *Host
	predecessor string
	deposit     amount.Amount
	timestamp   uint64
	transfers   []transfer
	outgoing    amount.Amount
}

func (c *call) Predecessor() string {
	return c.predecessor
}

func (c *call) AttachedDeposit() amount.Amount {
	return c.deposit
}

func (c *call) BlockTimestamp() uint64 {
	return c.timestamp
}

func (c *call) StorageUsage() uint64 {
	return storage.Usage()
}

func (c *call) StorageByteCost() amount.Amount {
	return c.host.byteCost
}

// AccountBalance - contract balance including the attached deposit
// and less any transfers already issued by this call
func (c *call) AccountBalance() amount.Amount {
	balance := c.host.balance(c.host.contract)
	remaining, ok := balance.Sub(c.outgoing)
	if !ok {
		return amount.Zero
	}
	return remaining
}

// Transfer - queue a payment from the contract
//
// the contract only ever transfers from funds it holds, so an
// overdraft here is a program error
func (c *call) Transfer(receiver string, value amount.Amount) {
	if value.IsZero() {
		return
	}
	outgoing, err := c.outgoing.Add(value)
	logger.PanicIfError("call.Transfer", err)
	if c.host.balance(c.host.contract).LessThan(outgoing) {
		logger.Panicf("call.Transfer: %s to: %s exceeds contract balance", value, receiver)
	}
	c.outgoing = outgoing
	c.transfers = append(c.transfers, transfer{
		receiver: receiver,
		value:    value,
	})
}
