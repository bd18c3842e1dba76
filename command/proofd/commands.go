// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/chain"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/rpc/certificate"
	"github.com/bitmark-inc/proofd/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-owner", "owner-key":
		testnet := len(arguments) > 0 && chain.IsTesting(arguments[0])
		privateKey, err := account.NewPrivateKey(testnet)
		if nil != err {
			exitwithstatus.Message("generate owner key error: %s", err)
		}
		fmt.Printf("owner:  %s\n", privateKey.Account())
		fmt.Printf("seed:   %s\n", privateKey.Seed())

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "fingerprint", "fp":
		return false // defer processing until configuration is read

	case "usage", "settle":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)         - display this message\n\n")
		fmt.Printf("  version                    (v)         - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)       - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                           and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]            - as above with extra certificate addresses\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-owner [CHAIN]          (owner-key) - display a new owner account and its seed\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)       - just run the program, same as no arguments\n")
		fmt.Printf("                                           for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)       - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)        - display the SHA3-256 fingerprint of the RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  usage                                  - display contract storage usage and balances\n")
		fmt.Printf("\n")

		fmt.Printf("  settle                                 - credit all pending receipts and exit\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	case "fingerprint", "fp":
		keyPair, err := tls.LoadX509KeyPair(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot load certificate: %q  error: %s", options.ClientRPC.Certificate, err)
		}
		fmt.Printf("rpc fingerprint: %x\n", certificate.Fingerprint(keyPair.Certificate[0]))

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
//
// the ledger is open so these commands can read and settle balances
func processDataCommand(log *logger.L, arguments []string, host *ledger.Host, owner string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "usage":
		contract := host.Contract()
		info := struct {
			Contract        string `json:"contract"`
			Owner           string `json:"owner"`
			StorageUsage    uint64 `json:"storageUsage"`
			StorageByteCost string `json:"storageByteCost"`
			Balance         string `json:"balance"`
			OwnerBalance    string `json:"ownerBalance"`
			PendingReceipts int    `json:"pendingReceipts"`
		}{
			Contract:        contract,
			Owner:           owner,
			StorageUsage:    host.StorageUsage(),
			StorageByteCost: host.StorageByteCost().String(),
			Balance:         host.Balance(contract).String(),
			OwnerBalance:    host.Balance(owner).String(),
			PendingReceipts: host.PendingReceipts(),
		}
		b, err := json.MarshalIndent(info, "", "  ")
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("%s\n", b)

	case "settle":
		n, err := host.Settle()
		if nil != err {
			log.Errorf("settle error: %s", err)
			exitwithstatus.Message("settle error: %s", err)
		}
		fmt.Printf("settled: %d receipts  committed usage: %d\n", n, storage.CommittedUsage())

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
