// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/chain"
	"github.com/bitmark-inc/proofd/configuration"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/rpc/listeners"
	"github.com/bitmark-inc/proofd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultContract        = "proofs"
	defaultStorageByteCost = "10000000000000000000" // 10^19 per byte
	defaultSettleInterval  = 30                     // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "proofd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory   string            `gluamapper:"data_directory" json:"data_directory"`
	PidFile         string            `gluamapper:"pidfile" json:"pidfile"`
	Chain           string            `gluamapper:"chain" json:"chain"`
	Database        DatabaseType      `gluamapper:"database" json:"database"`
	Owner           string            `gluamapper:"owner" json:"owner"`
	Contract        string            `gluamapper:"contract" json:"contract"`
	StorageByteCost string            `gluamapper:"storage_byte_cost" json:"storage_byte_cost"`
	SettleInterval  int               `gluamapper:"settle_interval" json:"settle_interval"`
	Genesis         map[string]string `gluamapper:"genesis" json:"genesis"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:   defaultDataDirectory,
		PidFile:         "", // no PidFile by default
		Chain:           chain.Live,
		Contract:        defaultContract,
		StorageByteCost: defaultStorageByteCost,
		SettleInterval:  defaultSettleInterval,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share certificate with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultLiveDatabase {
		switch options.Chain {
		case chain.Live:
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		}
	}

	if err := options.checkAccounts(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// file item is first and corresponding directory is second (or
	// nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		if !util.IsPlainName(*f[0]) {
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
		if nil != f[1] {
			*f[0] = util.EnsureAbsolute(*f[1], *f[0])
		}
	}

	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// owner and genesis entries must be accounts on the configured
// chain; the contract name is the only non-account identity
func (options *Configuration) checkAccounts() error {
	if "" == options.Contract {
		return fmt.Errorf("Contract: name must not be blank")
	}

	testing := chain.IsTesting(options.Chain)

	check := func(field string, name string) error {
		a, err := account.FromBase58(name)
		if nil != err {
			return fmt.Errorf("%s: %q error: %s", field, name, err)
		}
		if testing != a.IsTesting() {
			return fmt.Errorf("%s: %q is not a %s account", field, name, options.Chain)
		}
		return nil
	}

	if err := check("Owner", options.Owner); nil != err {
		return err
	}
	for name := range options.Genesis {
		if name == options.Contract {
			continue
		}
		if err := check("Genesis", name); nil != err {
			return err
		}
	}
	return nil
}

// convert the text fields into the host configuration
func (options *Configuration) ledgerConfiguration() (ledger.Configuration, error) {
	byteCost, err := amount.FromString(options.StorageByteCost)
	if nil != err {
		return ledger.Configuration{}, fmt.Errorf("StorageByteCost: %q error: %s", options.StorageByteCost, err)
	}

	genesis := make(map[string]amount.Amount, len(options.Genesis))
	for name, value := range options.Genesis {
		a, err := amount.FromString(value)
		if nil != err {
			return ledger.Configuration{}, fmt.Errorf("Genesis: %q amount: %q error: %s", name, value, err)
		}
		genesis[name] = a
	}

	return ledger.Configuration{
		Contract:        options.Contract,
		StorageByteCost: byteCost,
		Genesis:         genesis,
	}, nil
}

func (options *Configuration) settleInterval() time.Duration {
	return time.Duration(options.SettleInterval) * time.Second
}
