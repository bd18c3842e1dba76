// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connect         string              `json:"connect"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - plain account with its encrypted seed
//
// Data and Salt are empty for a receive only identity
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// New - empty configuration
func New(connect string, testnet bool) *Configuration {
	return &Configuration{
		TestNet:    testnet,
		Connect:    connect,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {
	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	if err := json.NewDecoder(f).Decode(options); nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - replace the file, keeping the previous one as .bk
func Save(filename string, configuration *Configuration) error {
	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(filename), 0700); nil != err {
		return err
	}

	if err := os.WriteFile(tempFile, b, 0600); nil != err {
		os.Remove(tempFile)
		return err
	}

	if _, err := os.Stat(filename); nil == err {
		os.Remove(previousFile)
		if err := os.Link(filename, previousFile); nil != err {
			return err
		}
	}

	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}
	return &id, nil
}

// Account - resolve an identity name, or accept a literal account
func (config *Configuration) Account(name string) (*account.Account, error) {
	if id, ok := config.Identities[name]; ok {
		return account.FromBase58(id.Account)
	}
	return account.FromBase58(name)
}

// Private - decrypt the seed of a named identity
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
//
// the first identity added becomes the default
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {
	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameExists
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}
	if privateKey.Test != config.TestNet {
		return fault.AccountMismatch
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     privateKey.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {
	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameExists
	}

	a, err := account.FromBase58(acc)
	if nil != err {
		return err
	}
	if a.IsTesting() != config.TestNet {
		return fault.AccountMismatch
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}

	return nil
}
