// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	State            *PoolHandle `prefix:"S" metered:"yes"`
	Proofs           *PoolHandle `prefix:"P" metered:"yes"`
	TerminatedProofs *PoolHandle `prefix:"T" metered:"yes"`
	Balances         *PoolHandle `prefix:"B"`
	Nonces           *PoolHandle `prefix:"N"`
	Receipts         *PoolHandle `prefix:"R"`
	Host             *PoolHandle `prefix:"H"`
	TestData         *PoolHandle `prefix:"Z" metered:"yes"`
}

// Pool - the set of exported pools
var Pool pools

// reserved keys
var (
	versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}
	usageKey   = []byte{0x00, 'U', 'S', 'A', 'G', 'E'}
)

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	database      *leveldb.DB
	readOnly      bool
	batch         *leveldb.Batch
	cache         Cache
	inTransaction bool
	usage         uint64 // committed metered bytes
	pending       uint64 // metered bytes including the open transaction
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.database {
		return fault.AlreadyInitialised
	}

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}
	poolData.database = db
	poolData.readOnly = readOnly

	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return fault.DatabaseIsNotSet
		}
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return err
		}
	}

	usage, err := getUsage(db)
	if nil != err {
		return err
	}
	poolData.usage = usage
	poolData.pending = usage
	poolData.batch = new(leveldb.Batch)
	poolData.cache = newCache()
	poolData.inTransaction = false

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:  prefix,
			limit:   limit,
			metered: "yes" == fieldInfo.Tag.Get("metered"),
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.database {
		poolData.database.Close()
		poolData.database = nil
	}
	poolData.inTransaction = false
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	if poolData.inTransaction {
		logger.Criticalf("storage finalise with open transaction: discarding %d operations", poolData.batch.Len())
		poolData.batch.Reset()
		poolData.cache.Clear()
	}
	dbClose()
	poolData.Unlock()
}

// IsInitialised - true if the database is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.database
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

func getUsage(db *leveldb.DB) (uint64, error) {
	usageValue, err := db.Get(usageKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}
	if 8 != len(usageValue) {
		return 0, fmt.Errorf("corrupt usage record length: %d", len(usageValue))
	}
	return binary.BigEndian.Uint64(usageValue), nil
}
