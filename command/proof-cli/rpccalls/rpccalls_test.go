// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/command/proof-cli/rpccalls"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/proof"
	"github.com/bitmark-inc/proofd/rpc/accounts"
	"github.com/bitmark-inc/proofd/rpc/proofs"
	"github.com/bitmark-inc/proofd/rpc/treasury"
)

const lastNonce = 5

type stubAccounts struct{}

func (stubAccounts) Balance(arguments *accounts.BalanceArguments, reply *accounts.BalanceReply) error {
	reply.Account = arguments.Account
	reply.Balance = amount.New(1000)
	reply.Nonce = lastNonce
	return nil
}

type stubProofs struct {
	stored map[proof.Hash]string
}

func (s *stubProofs) Store(arguments *proofs.StoreArguments, reply *proofs.StoreReply) error {
	if _, err := arguments.Header.Verify(proofs.StoreMethod, arguments.Payload(), true); nil != err {
		return err
	}
	if lastNonce+1 != arguments.Header.Nonce {
		return fault.InvalidNonce
	}
	s.stored[arguments.Hash] = arguments.Header.Caller
	reply.CreatedAt = 1234
	reply.Refund = arguments.Deposit
	return nil
}

func (s *stubProofs) Terminate(arguments *proofs.TerminateArguments, reply *proofs.TerminateReply) error {
	if _, err := arguments.Header.Verify(proofs.TerminateMethod, arguments.Payload(), true); nil != err {
		return err
	}
	if _, ok := s.stored[arguments.Hash]; !ok {
		return fault.ProofNotFound
	}
	delete(s.stored, arguments.Hash)
	return nil
}

func (s *stubProofs) Validate(arguments *proofs.ValidateArguments, reply *proof.Status) error {
	issuer, ok := s.stored[arguments.Hash]
	if !ok {
		*reply = proof.InvalidStatus()
		return nil
	}
	*reply = proof.ValidStatus(proof.View{Issuer: issuer, CreatedAt: 1234})
	return nil
}

type stubTreasury struct {
	owner string
}

func (s *stubTreasury) Withdraw(arguments *treasury.WithdrawArguments, reply *treasury.WithdrawReply) error {
	if _, err := arguments.Header.Verify(treasury.WithdrawMethod, arguments.Payload(), true); nil != err {
		return err
	}
	if s.owner != arguments.Header.Caller {
		return fault.NotContractOwner
	}
	reply.Amount = amount.New(77)
	return nil
}

func setupClient(t *testing.T, owner string) (*rpccalls.Client, *bytes.Buffer) {
	server := rpc.NewServer()
	require.Nil(t, server.RegisterName("Accounts", stubAccounts{}), "register accounts")
	require.Nil(t, server.RegisterName("Proofs", &stubProofs{stored: make(map[proof.Hash]string)}), "register proofs")
	require.Nil(t, server.RegisterName("Treasury", &stubTreasury{owner: owner}), "register treasury")

	serverConn, clientConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	log := &bytes.Buffer{}
	client := rpccalls.NewClientFromConn(clientConn, true, true, log)
	t.Cleanup(client.Close)
	return client, log
}

func TestStoreValidateTerminate(t *testing.T) {
	key, err := account.NewPrivateKey(true)
	require.Nil(t, err, "key")

	client, log := setupClient(t, "")
	hash := proof.Keccak256([]byte("12345"))
	timeout := uint32(60)

	reply, err := client.Store(&rpccalls.StoreData{
		Key:     key,
		Hash:    hash,
		Timeout: &timeout,
		Deposit: amount.New(500),
	})
	require.Nil(t, err, "store")
	assert.Equal(t, uint64(1234), reply.CreatedAt, "created at")
	assert.Equal(t, amount.New(500), reply.Refund, "refund")
	assert.Contains(t, log.String(), "Store Request", "verbose output")

	status, err := client.Validate(hash)
	require.Nil(t, err, "validate")
	assert.Equal(t, proof.Valid, status.Kind, "kind")
	assert.Equal(t, key.Account().String(), status.View.Issuer, "issuer")

	err = client.Terminate(key, hash)
	require.Nil(t, err, "terminate")

	err = client.Terminate(key, hash)
	require.NotNil(t, err, "second terminate")
	assert.Equal(t, fault.ProofNotFound.Error(), err.Error(), "error text")

	status, err = client.Validate(hash)
	require.Nil(t, err, "validate after terminate")
	assert.Equal(t, proof.Invalid, status.Kind, "kind after terminate")
}

func TestWithdraw(t *testing.T) {
	owner, err := account.NewPrivateKey(true)
	require.Nil(t, err, "owner key")
	other, err := account.NewPrivateKey(true)
	require.Nil(t, err, "other key")

	client, _ := setupClient(t, owner.Account().String())

	reply, err := client.Withdraw(owner)
	require.Nil(t, err, "owner withdraw")
	assert.Equal(t, amount.New(77), reply.Amount, "amount")

	_, err = client.Withdraw(other)
	require.NotNil(t, err, "other withdraw")
	assert.Equal(t, fault.NotContractOwner.Error(), err.Error(), "error text")
}

func TestGetBalance(t *testing.T) {
	client, _ := setupClient(t, "")

	reply, err := client.GetBalance("proofs")
	require.Nil(t, err, "balance")
	assert.Equal(t, "proofs", reply.Account, "account")
	assert.Equal(t, uint64(lastNonce), reply.Nonce, "nonce")
}
