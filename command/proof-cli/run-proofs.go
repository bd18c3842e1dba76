// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/command/proof-cli/rpccalls"
	"github.com/bitmark-inc/proofd/proof"
)

func runStore(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	hashText := c.String("hash")
	content := c.String("content")

	var hash proof.Hash
	switch {
	case "" != hashText && "" != content:
		return fmt.Errorf("only one of hash or content is allowed")
	case "" != content:
		hash = proof.Keccak256([]byte(content))
	default:
		var err error
		hash, err = checkHash(hashText)
		if nil != err {
			return err
		}
	}

	deposit, err := amount.FromString(c.String("deposit"))
	if nil != err {
		return fmt.Errorf("deposit: %q error: %s", c.String("deposit"), err)
	}

	var timeout *uint32
	if t := c.Uint64("timeout"); 0 != t {
		if t > math.MaxUint32 {
			return fmt.Errorf("timeout: %d exceeds %d seconds", t, uint32(math.MaxUint32))
		}
		t32 := uint32(t)
		timeout = &t32
	}

	private, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "hash: %s\n", hash)
		fmt.Fprintf(m.e, "deposit: %s\n", deposit)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Store(&rpccalls.StoreData{
		Key:     private.PrivateKey,
		Hash:    hash,
		Timeout: timeout,
		Deposit: deposit,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Hash      proof.Hash    `json:"hash"`
		CreatedAt uint64        `json:"createdAt,string"`
		Refund    amount.Amount `json:"refund"`
	}{
		Hash:      hash,
		CreatedAt: reply.CreatedAt,
		Refund:    reply.Refund,
	})
}

func runTerminate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkHash(c.String("hash"))
	if nil != err {
		return err
	}

	private, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Terminate(private.PrivateKey, hash); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "terminated: %s\n", hash)
	return nil
}

func runValidate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkHash(c.String("hash"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Validate(hash)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
