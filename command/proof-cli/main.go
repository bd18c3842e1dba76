// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/proofd/chain"
	"github.com/bitmark-inc/proofd/command/proof-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that need neither configuration nor network
var offline = map[string]bool{
	"version":   true,
	"generate":  true,
	"secret":    true,
	"hash":      true,
	"bs58":      true,
	"hash-code": true,
	"help":      true,
	"h":         true,
	"":          true,
}

func main() {

	app := cli.NewApp()
	app.Name = "proof-cli"
	app.Usage = "store, terminate and validate content proofs"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " connect to proofd `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new account and seed, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise proof-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*proofd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "account",
			Usage:     "display account and decrypted seed of an identity",
			ArgsUsage: "\n   (* = required)",
			Action:    runAccount,
		},
		{
			Name:      "secret",
			Usage:     "generate a random printable secret",
			ArgsUsage: "\n   (* = required)",
			Action:    runSecret,
		},
		{
			Name:      "hash",
			Usage:     "presence hash of a location and a secret",
			ArgsUsage: "LOCATION SECRET",
			Action:    runHash,
		},
		{
			Name:      "bs58",
			Usage:     "encode a value as base58",
			ArgsUsage: "VALUE",
			Action:    runBase58,
		},
		{
			Name:      "hash-code",
			Usage:     "base58 SHA-256 of a binary, to check deployed code",
			ArgsUsage: "FILE",
			Action:    runHashCode,
		},
		{
			Name:      "store",
			Usage:     "store a proof hash",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "+base58 proof `HASH`",
				},
				cli.StringFlag{
					Name:  "content, C",
					Value: "",
					Usage: "+keccak-256 of `TEXT`",
				},
				cli.Uint64Flag{
					Name:  "timeout, t",
					Value: 0,
					Usage: " validity in `SECONDS`, 0 = never expires",
				},
				cli.StringFlag{
					Name:  "deposit, d",
					Value: "",
					Usage: "*attached deposit `AMOUNT`",
				},
			},
			Action: runStore,
		},
		{
			Name:      "terminate",
			Usage:     "terminate a stored proof",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "*base58 proof `HASH`",
				},
			},
			Action: runTerminate,
		},
		{
			Name:      "validate",
			Usage:     "status of a proof",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "*base58 proof `HASH`",
				},
			},
			Action: runValidate,
		},
		{
			Name:      "withdraw",
			Usage:     "owner only: withdraw contract funds above the storage reserve",
			ArgsUsage: "\n   (* = required)",
			Action:    runWithdraw,
		},
		{
			Name:      "balance",
			Usage:     "balance and nonce of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "info",
			Usage:     "display proofd info",
			ArgsUsage: "\n   (* = required)",
			Action:    runInfo,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		network := c.GlobalString("network")
		switch network {
		case "live":
			network = chain.Live
		case "testing", "test":
			network = chain.Testing
		case "local":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}
		testnet := chain.IsTesting(network)

		command := c.Args().Get(0)
		if offline[command] {
			c.App.Metadata["config"] = &metadata{
				testnet: testnet,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file, err := configurationFile(app.Name, network)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := os.Stat(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				testnet: testnet,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			testnet: config.TestNet,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// $XDG_CONFIG_HOME/proof-cli/<network>-proof-cli.json
func configurationFile(name string, network string) (string, error) {
	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	info, err := os.Stat(p)
	if nil != err {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return filepath.Join(p, name, network+"-"+name+".json"), nil
}
