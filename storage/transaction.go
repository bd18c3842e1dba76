// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/proofd/fault"
)

// Begin - start the single write transaction
func Begin() error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}
	if poolData.inTransaction {
		return fault.TransactionAlreadyStarted
	}

	poolData.batch.Reset()
	poolData.cache.Clear()
	poolData.pending = poolData.usage
	poolData.inTransaction = true
	return nil
}

// Commit - atomically write all pending operations and the new usage
func Commit() error {
	poolData.Lock()
	defer poolData.Unlock()

	if !poolData.inTransaction {
		return fault.TransactionNotStarted
	}

	if poolData.pending != poolData.usage {
		usage := make([]byte, 8)
		binary.BigEndian.PutUint64(usage, poolData.pending)
		poolData.batch.Put(usageKey, usage)
	}

	err := poolData.database.Write(poolData.batch, nil)
	if nil != err {
		discardLocked()
		return err
	}

	poolData.usage = poolData.pending
	poolData.batch.Reset()
	poolData.cache.Clear()
	poolData.inTransaction = false
	return nil
}

// Abort - discard all pending operations
func Abort() {
	poolData.Lock()
	defer poolData.Unlock()

	if !poolData.inTransaction {
		return
	}
	discardLocked()
}

// InTransaction - true between Begin and Commit/Abort
func InTransaction() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.inTransaction
}

func discardLocked() {
	poolData.batch.Reset()
	poolData.cache.Clear()
	poolData.pending = poolData.usage
	poolData.inTransaction = false
}
