// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runSecret(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	secret, err := makeSecret(secretLength)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", secret)
	return nil
}

func runHash(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 2 != c.NArg() {
		return fmt.Errorf("usage: hash LOCATION SECRET")
	}
	fmt.Fprintf(m.w, "%s\n", presenceHash(c.Args().Get(0), c.Args().Get(1)))
	return nil
}

func runBase58(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fmt.Errorf("usage: bs58 VALUE")
	}
	fmt.Fprintf(m.w, "%s\n", encodeBase58(c.Args().Get(0)))
	return nil
}

func runHashCode(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fmt.Errorf("usage: hash-code FILE")
	}
	text, err := codeHash(c.Args().Get(0))
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", text)
	return nil
}
