// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/storage"
)

// Receipt - a transfer debited from the contract and waiting to be
// credited to its receiver
type Receipt struct {
	ID       uuid.UUID     `json:"id"`
	Receiver string        `json:"receiver"`
	Amount   amount.Amount `json:"amount"`
	Created  uint64        `json:"created,string"`
}

// stored form of a receipt, the ID is the key
type packedReceipt struct {
	Receiver string `cbor:"1,keyasint"`
	Amount   []byte `cbor:"2,keyasint"`
	Created  uint64 `cbor:"3,keyasint"`
}

var receiptMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic(err)
	}
	return mode
}

func (r *Receipt) pack() ([]byte, error) {
	return receiptMode.Marshal(packedReceipt{
		Receiver: r.Receiver,
		Amount:   r.Amount.Pack(),
		Created:  r.Created,
	})
}

func unpackReceipt(key []byte, buffer []byte) (*Receipt, error) {
	id, err := uuid.FromBytes(key)
	if nil != err {
		return nil, err
	}
	var p packedReceipt
	if err := cbor.Unmarshal(buffer, &p); nil != err {
		return nil, err
	}
	value, err := amount.Unpack(p.Amount)
	if nil != err {
		return nil, err
	}
	return &Receipt{
		ID:       id,
		Receiver: p.Receiver,
		Amount:   value,
		Created:  p.Created,
	}, nil
}

// debit the contract for every transfer and record its receipt
//
// caller holds the lock and an open transaction
func (h *Host) issueReceipts(c *call) ([]Receipt, error) {
	if 0 == len(c.transfers) {
		return nil, nil
	}

	if err := h.debit(h.contract, c.outgoing); nil != err {
		return nil, err
	}

	receipts := make([]Receipt, 0, len(c.transfers))
	for _, t := range c.transfers {
		r := Receipt{
			ID:       uuid.New(),
			Receiver: t.receiver,
			Amount:   t.value,
			Created:  c.timestamp,
		}
		packed, err := r.pack()
		if nil != err {
			return nil, err
		}
		h.pools.Receipts.Put(r.ID[:], packed)
		receipts = append(receipts, r)
	}
	return receipts, nil
}

// PendingReceipts - number of receipts not yet settled
func (h *Host) PendingReceipts() int {
	h.RLock()
	defer h.RUnlock()
	return len(h.pools.Receipts.Elements())
}

// Settle - credit all pending receipts to their receivers
//
// returns the number of receipts settled
func (h *Host) Settle() (int, error) {
	h.Lock()
	defer h.Unlock()

	elements := h.pools.Receipts.Elements()
	if 0 == len(elements) {
		return 0, nil
	}

	if err := storage.Begin(); nil != err {
		return 0, err
	}

	for _, e := range elements {
		r, err := unpackReceipt(e.Key, e.Value)
		if nil != err {
			storage.Abort()
			return 0, err
		}
		if err := h.credit(r.Receiver, r.Amount); nil != err {
			storage.Abort()
			return 0, err
		}
		h.pools.Receipts.Delete(e.Key)
		h.log.Debugf("settle: %s to: %s amount: %s", r.ID, r.Receiver, r.Amount)
	}

	if err := storage.Commit(); nil != err {
		return 0, err
	}
	return len(elements), nil
}
