// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/proofd/command/proof-cli/configuration"
	"github.com/bitmark-inc/proofd/command/proof-cli/rpccalls"
	"github.com/bitmark-inc/proofd/proof"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// global identity option or the configured default
func identityName(c *cli.Context, config *configuration.Configuration) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	if "" == name {
		return "", fmt.Errorf("no identity given and no default identity configured")
	}
	return name, nil
}

// decrypt the selected identity, prompting when no password option
func unlockIdentity(c *cli.Context, m *metadata) (*configuration.Private, error) {
	name, err := identityName(c, m.config)
	if nil != err {
		return nil, err
	}

	if _, err := m.config.Identity(name); nil != err {
		return nil, fmt.Errorf("identity: %q error: %s", name, err)
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptCheckPassword()
		if nil != err {
			return nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  account: %s\n", name, private.Account)
	}
	return private, nil
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if "" == m.config.Connect {
		return nil, fmt.Errorf("no connection configured")
	}
	return rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
}

func checkHash(s string) (proof.Hash, error) {
	if "" == s {
		return proof.Hash{}, fmt.Errorf("hash is required")
	}
	return proof.HashFromBase58(s)
}
