// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/proofd/rpc/accounts"
)

// GetBalance - balance and last used nonce of an account
func (client *Client) GetBalance(account string) (*accounts.BalanceReply, error) {
	arguments := accounts.BalanceArguments{
		Account: account,
	}
	client.printJson("Balance Request", arguments)

	var reply accounts.BalanceReply
	if err := client.client.Call("Accounts.Balance", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)
	return &reply, nil
}

// next unused nonce for a caller
func (client *Client) nextNonce(account string) (uint64, error) {
	reply, err := client.GetBalance(account)
	if nil != err {
		return 0, err
	}
	return reply.Nonce + 1, nil
}
