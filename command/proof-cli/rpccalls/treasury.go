// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/rpc/signed"
	"github.com/bitmark-inc/proofd/rpc/treasury"
)

// Withdraw - owner only transfer of surplus contract funds
func (client *Client) Withdraw(key *account.PrivateKey) (*treasury.WithdrawReply, error) {
	nonce, err := client.nextNonce(key.Account().String())
	if nil != err {
		return nil, err
	}

	arguments := treasury.WithdrawArguments{}
	arguments.Header, err = signed.Sign(key, treasury.WithdrawMethod, nonce, arguments.Payload())
	if nil != err {
		return nil, err
	}
	client.printJson("Withdraw Request", arguments)

	var reply treasury.WithdrawReply
	if err := client.client.Call(treasury.WithdrawMethod, &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Withdraw Reply", reply)
	return &reply, nil
}
