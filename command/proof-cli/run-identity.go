// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/command/proof-cli/configuration"
	"github.com/bitmark-inc/proofd/fault"
)

const defaultIdentityName = "default"

type generateReply struct {
	Account string `json:"account"`
	Seed    string `json:"seed"`
	TestNet bool   `json:"testnet"`
}

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Account: privateKey.Account().String(),
		Seed:    privateKey.Seed(),
		TestNet: privateKey.Test,
	})
}

func runSetup(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	connect := strings.TrimSpace(c.String("connect"))
	if "" == connect {
		return fmt.Errorf("connect is required")
	}
	description := c.String("description")
	if "" == description {
		return fmt.Errorf("description is required")
	}

	name := c.GlobalString("identity")
	if "" == name {
		name = defaultIdentityName
	}

	m.config = configuration.New(connect, m.testnet)
	if err := addSeedIdentity(c, m, name, description, c.String("seed")); nil != err {
		return err
	}
	m.save = true

	return printJson(m.w, m.config.Identities[name])
}

func runAdd(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	description := c.String("description")
	if "" == description {
		return fmt.Errorf("description is required")
	}

	name := c.GlobalString("identity")
	if "" == name {
		return fmt.Errorf("identity name is required")
	}

	seed := c.String("seed")
	acc := c.String("account")
	generate := c.Bool("new")

	selected := 0
	for _, b := range []bool{"" != seed, "" != acc, generate} {
		if b {
			selected += 1
		}
	}
	if 1 != selected {
		return fmt.Errorf("select exactly one of: seed, account or new")
	}

	var err error
	if "" != acc {
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
	} else {
		err = addSeedIdentity(c, m, name, description, seed)
	}
	if nil != err {
		return err
	}
	m.save = true

	return printJson(m.w, m.config.Identities[name])
}

// encrypt a seed, or a fresh one if blank, into the configuration
func addSeedIdentity(c *cli.Context, m *metadata, name string, description string, seed string) error {
	if "" == seed {
		privateKey, err := account.NewPrivateKey(m.testnet)
		if nil != err {
			return err
		}
		seed = privateKey.Seed()
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	} else if len(password) < minimumPasswordLength {
		return fault.InvalidPassword
	}

	return m.config.AddIdentity(name, description, seed, password)
}

func runAccount(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	private, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}
	return printJson(m.w, private)
}
