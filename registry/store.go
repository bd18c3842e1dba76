// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/proof"
	"github.com/bitmark-inc/proofd/rent"
)

// Store - record a new active proof issued by the caller
//
// only the active pool is checked, so a terminated hash can be stored
// again; the caller pays for the bytes added and receives any surplus
// deposit back
func (r *Registry) Store(env Environment, hash proof.Hash, timeoutSeconds *uint32) (uint64, error) {
	key := hash.Bytes()

	if r.active.Has(key) {
		return 0, fault.ProofAlreadyExists
	}

	record := proof.NewRecord(env.Predecessor(), env.BlockTimestamp(), timeoutSeconds)
	packed, err := record.Pack()
	if nil != err {
		return 0, err
	}

	receipt, err := rent.AssertPayment(env, func() error {
		r.active.Put(key, packed)
		return nil
	})
	if nil != err {
		r.log.Debugf("store: %s by: %s failed: %s", hash, record.Issuer, err)
		return 0, err
	}

	r.log.Infof("store: %s by: %s bytes: %d cost: %s refund: %s", hash, record.Issuer, receipt.Bytes, receipt.Cost, receipt.Refund)

	return record.CreatedAt, nil
}

// Terminate - move an active proof to the terminated pool
//
// only the issuer may terminate; the record is moved unchanged
func (r *Registry) Terminate(env Environment, hash proof.Hash) error {
	if err := assertNotPayable(env); nil != err {
		return err
	}

	key := hash.Bytes()

	packed := r.active.Get(key)
	if nil == packed {
		return fault.ProofNotFound
	}

	record, err := proof.Unpack(packed)
	if nil != err {
		return err
	}

	caller := env.Predecessor()
	if record.Issuer != caller {
		r.log.Warnf("terminate: %s by: %s denied, issuer: %s", hash, caller, record.Issuer)
		return fault.NotProofIssuer
	}

	value := make([]byte, len(packed))
	copy(value, packed)

	r.active.Delete(key)
	r.terminated.Put(key, value)

	r.log.Infof("terminate: %s by: %s", hash, caller)

	return nil
}
