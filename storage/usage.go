// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// RecordOverhead - bytes charged per metered record in addition to
// its key and value
const RecordOverhead = 40

// RecordCost - metered size of one record
func RecordCost(key []byte, value []byte) uint64 {
	return uint64(1+len(key)+len(value)) + RecordOverhead
}

func recordCost(prefixedKey []byte, value []byte) uint64 {
	return uint64(len(prefixedKey)+len(value)) + RecordOverhead
}

// Usage - bytes held by metered pools, including the open transaction
func Usage() uint64 {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.pending
}

// CommittedUsage - bytes held by metered pools on disk
func CommittedUsage() uint64 {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.usage
}
