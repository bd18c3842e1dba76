// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runWithdraw(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	private, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Withdraw(private.PrivateKey)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := c.String("owner")
	if "" == name {
		var err error
		name, err = identityName(c, m.config)
		if nil != err {
			return err
		}
	}

	// identity names resolve to accounts, anything else is sent as
	// given so the contract account can be queried
	target := name
	if a, err := m.config.Account(name); nil == err {
		target = a.String()
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(target)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}
