// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/proof"
	"github.com/bitmark-inc/proofd/rpc/proofs"
	"github.com/bitmark-inc/proofd/rpc/signed"
)

// StoreData - parameters for a store request
type StoreData struct {
	Key     *account.PrivateKey
	Hash    proof.Hash
	Timeout *uint32
	Deposit amount.Amount
}

// Store - sign and send a store request
func (client *Client) Store(data *StoreData) (*proofs.StoreReply, error) {
	nonce, err := client.nextNonce(data.Key.Account().String())
	if nil != err {
		return nil, err
	}

	arguments := proofs.StoreArguments{
		Hash:    data.Hash,
		Timeout: data.Timeout,
		Deposit: data.Deposit,
	}
	arguments.Header, err = signed.Sign(data.Key, proofs.StoreMethod, nonce, arguments.Payload())
	if nil != err {
		return nil, err
	}
	client.printJson("Store Request", arguments)

	var reply proofs.StoreReply
	if err := client.client.Call(proofs.StoreMethod, &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Store Reply", reply)
	return &reply, nil
}

// Terminate - sign and send a terminate request
func (client *Client) Terminate(key *account.PrivateKey, hash proof.Hash) error {
	nonce, err := client.nextNonce(key.Account().String())
	if nil != err {
		return err
	}

	arguments := proofs.TerminateArguments{
		Hash: hash,
	}
	arguments.Header, err = signed.Sign(key, proofs.TerminateMethod, nonce, arguments.Payload())
	if nil != err {
		return err
	}
	client.printJson("Terminate Request", arguments)

	var reply proofs.TerminateReply
	return client.client.Call(proofs.TerminateMethod, &arguments, &reply)
}

// Validate - unauthenticated status query
func (client *Client) Validate(hash proof.Hash) (*proof.Status, error) {
	arguments := proofs.ValidateArguments{
		Hash: hash,
	}
	client.printJson("Validate Request", arguments)

	var reply proof.Status
	if err := client.client.Call("Proofs.Validate", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Validate Reply", reply)
	return &reply, nil
}
