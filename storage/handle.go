// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - the functions a pool offers to the rest of the program
type Handle interface {
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	Has([]byte) bool
	Put([]byte, []byte)
	PutN([]byte, uint64)
	Delete([]byte)
	Elements() []Element
}

// PoolHandle - a key space inside the database
type PoolHandle struct {
	prefix  byte
	limit   []byte
	metered bool
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair in the open transaction
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.Lock()
	defer poolData.Unlock()

	mustBeWritable("pool.Put")

	prefixedKey := p.prefixKey(key)
	if p.metered {
		if old, found := getLocked(prefixedKey); found {
			poolData.pending -= recordCost(prefixedKey, old)
		}
		poolData.pending += recordCost(prefixedKey, value)
	}

	v := make([]byte, len(value))
	copy(v, value)
	poolData.cache.Set(dbPut, string(prefixedKey), v)
	poolData.batch.Put(prefixedKey, v)
}

// PutN - store a uint64 as an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key in the open transaction
func (p *PoolHandle) Delete(key []byte) {
	poolData.Lock()
	defer poolData.Unlock()

	mustBeWritable("pool.Delete")

	prefixedKey := p.prefixKey(key)
	old, found := getLocked(prefixedKey)
	if !found {
		return
	}
	if p.metered {
		poolData.pending -= recordCost(prefixedKey, old)
	}

	poolData.cache.Set(dbDelete, string(prefixedKey), nil)
	poolData.batch.Delete(prefixedKey)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil
	}
	value, _ := getLocked(p.prefixKey(key))
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return false
	}
	_, found := getLocked(p.prefixKey(key))
	return found
}

// Elements - all committed elements of the pool in key order
//
// pending writes of an open transaction are not visible
func (p *PoolHandle) Elements() []Element {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil
	}

	searchRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	iter := poolData.database.NewIterator(&searchRange, nil)

	results := make([]Element, 0, 16)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.Elements", err)

	return results
}

// read through the transaction cache; caller holds the lock
func getLocked(prefixedKey []byte) ([]byte, bool) {
	if nil != poolData.cache {
		op, value, found := poolData.cache.Get(string(prefixedKey))
		if found {
			if dbDelete == op {
				return nil, false
			}
			return value, true
		}
	}

	value, err := poolData.database.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil, false
	}
	logger.PanicIfError("pool.Get", err)
	return value, true
}

// caller holds the lock
func mustBeWritable(operation string) {
	if nil == poolData.database {
		logger.Panicf("%s: nil database", operation)
	}
	if !poolData.inTransaction {
		logger.Panicf("%s: outside of transaction", operation)
	}
}
