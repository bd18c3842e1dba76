// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/proofd/proof"
)

// Validate - current status of a hash
//
// active proofs are Valid until strictly after created at + timeout;
// a hash found in neither pool is Invalid
func (r *Registry) Validate(clock Clock, hash proof.Hash) (proof.Status, error) {
	key := hash.Bytes()

	if packed := r.active.Get(key); nil != packed {
		record, err := proof.Unpack(packed)
		if nil != err {
			return proof.InvalidStatus(), err
		}
		if record.IsExpired(clock.BlockTimestamp()) {
			return proof.ExpiredStatus(record.View()), nil
		}
		return proof.ValidStatus(record.View()), nil
	}

	if packed := r.terminated.Get(key); nil != packed {
		record, err := proof.Unpack(packed)
		if nil != err {
			return proof.InvalidStatus(), err
		}
		return proof.TerminatedStatus(record.View()), nil
	}

	return proof.InvalidStatus(), nil
}
