// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the host that runs contract calls
//
// each call is executed under the ledger lock inside a single storage
// transaction; the attached deposit moves from the caller to the
// contract account before the call and transfers issued by the call
// are debited from the contract when it commits, then credited to
// their receivers later by the settler
package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/storage"
)

var _ Ledger = (*Host)(nil)

// marker recorded once the genesis balances are credited
var genesisKey = []byte("genesis")

// Ledger - operations offered to the RPC layer
type Ledger interface {
	Execute(caller string, deposit amount.Amount, method func(registry.Environment) error) (*Outcome, error)
	View(method func(registry.Clock) error) error
	CheckNonce(account string, nonce uint64) error
	Balance(account string) amount.Amount
	Nonce(account string) uint64
	Contract() string
	StorageUsage() uint64
	StorageByteCost() amount.Amount
	PendingReceipts() int
}

// Configuration - host parameters
type Configuration struct {
	Contract        string
	StorageByteCost amount.Amount
	Genesis         map[string]amount.Amount
}

// Pools - storage used by the host itself
type Pools struct {
	Balances storage.Handle
	Nonces   storage.Handle
	Receipts storage.Handle
	Host     storage.Handle
}

// Outcome - summary of a committed call
type Outcome struct {
	Timestamp    uint64
	StorageDelta int64
	Receipts     []Receipt
}

// Host - the ledger implementation
type Host struct {
	sync.RWMutex
	log      *logger.L
	contract string
	byteCost amount.Amount
	clock    func() uint64
	last     uint64
	pools    Pools
	wake     chan struct{}
}

// wall clock in nanoseconds
func systemClock() uint64 {
	return uint64(time.Now().UnixNano())
}

// New - create a host over open storage
//
// clock may be nil to use the system clock
func New(log *logger.L, configuration Configuration, pools Pools, clock func() uint64) (*Host, error) {
	if "" == configuration.Contract {
		return nil, fault.MissingParameters
	}
	if nil == clock {
		clock = systemClock
	}

	h := &Host{
		log:      log,
		contract: configuration.Contract,
		byteCost: configuration.StorageByteCost,
		clock:    clock,
		pools:    pools,
		wake:     make(chan struct{}, 1),
	}

	if err := h.applyGenesis(configuration.Genesis); nil != err {
		return nil, err
	}

	return h, nil
}

// credit initial balances exactly once per database
func (h *Host) applyGenesis(genesis map[string]amount.Amount) error {
	h.Lock()
	defer h.Unlock()

	if h.pools.Host.Has(genesisKey) {
		return nil
	}

	if err := storage.Begin(); nil != err {
		return err
	}
	for account, value := range genesis {
		if err := h.credit(account, value); nil != err {
			storage.Abort()
			return err
		}
		h.log.Infof("genesis: %s balance: %s", account, value)
	}
	h.pools.Host.PutN(genesisKey, h.clock())
	return storage.Commit()
}

// Contract - name of the contract account
func (h *Host) Contract() string {
	return h.contract
}

// StorageByteCost - price of one byte of contract storage
func (h *Host) StorageByteCost() amount.Amount {
	return h.byteCost
}

// StorageUsage - committed contract storage in bytes
func (h *Host) StorageUsage() uint64 {
	h.RLock()
	defer h.RUnlock()
	return storage.Usage()
}

// Balance - committed balance of an account
func (h *Host) Balance(account string) amount.Amount {
	h.RLock()
	defer h.RUnlock()
	return h.balance(account)
}

// Nonce - last nonce used by an account
func (h *Host) Nonce(account string) uint64 {
	h.RLock()
	defer h.RUnlock()
	n, _ := h.pools.Nonces.GetN([]byte(account))
	return n
}

// CheckNonce - accept only a nonce greater than the last one used
//
// the nonce is consumed even if the call that follows fails
func (h *Host) CheckNonce(account string, nonce uint64) error {
	h.Lock()
	defer h.Unlock()

	key := []byte(account)
	last, _ := h.pools.Nonces.GetN(key)
	if nonce <= last {
		return fault.InvalidNonce
	}

	if err := storage.Begin(); nil != err {
		return err
	}
	h.pools.Nonces.PutN(key, nonce)
	return storage.Commit()
}

// strictly increasing timestamps even if the wall clock stalls
func (h *Host) nextTimestamp() uint64 {
	now := h.clock()
	if now <= h.last {
		now = h.last + 1
	}
	h.last = now
	return now
}

// View - run a read only method against committed state
func (h *Host) View(method func(registry.Clock) error) error {
	h.RLock()
	defer h.RUnlock()
	return method(viewClock(h.clock()))
}

type viewClock uint64

func (c viewClock) BlockTimestamp() uint64 {
	return uint64(c)
}

// Execute - run a mutating method as one atomic call
func (h *Host) Execute(caller string, deposit amount.Amount, method func(registry.Environment) error) (*Outcome, error) {
	h.Lock()
	defer h.Unlock()

	if err := storage.Begin(); nil != err {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			storage.Abort()
		}
	}()

	c := &call{
		host:        h,
		predecessor: caller,
		deposit:     deposit,
		timestamp:   h.nextTimestamp(),
	}
	usageBefore := storage.Usage()

	if !deposit.IsZero() {
		if err := h.debit(caller, deposit); nil != err {
			return nil, err
		}
		if err := h.credit(h.contract, deposit); nil != err {
			return nil, err
		}
	}

	if err := method(c); nil != err {
		h.log.Debugf("call by: %s failed: %s", caller, err)
		return nil, err
	}

	receipts, err := h.issueReceipts(c)
	if nil != err {
		return nil, err
	}

	outcome := &Outcome{
		Timestamp:    c.timestamp,
		StorageDelta: int64(storage.Usage()) - int64(usageBefore),
		Receipts:     receipts,
	}

	if err := storage.Commit(); nil != err {
		return nil, err
	}
	committed = true

	if len(receipts) > 0 {
		select {
		case h.wake <- struct{}{}:
		default:
		}
	}

	return outcome, nil
}

// caller holds the lock
func (h *Host) balance(account string) amount.Amount {
	buffer := h.pools.Balances.Get([]byte(account))
	if nil == buffer {
		return amount.Zero
	}
	value, err := amount.Unpack(buffer)
	logger.PanicIfError("ledger.balance", err)
	return value
}

// caller holds the lock and an open transaction
func (h *Host) credit(account string, value amount.Amount) error {
	total, err := h.balance(account).Add(value)
	if nil != err {
		return err
	}
	h.pools.Balances.Put([]byte(account), total.Pack())
	return nil
}

// caller holds the lock and an open transaction
func (h *Host) debit(account string, value amount.Amount) error {
	remaining, ok := h.balance(account).Sub(value)
	if !ok {
		return fault.InsufficientBalance
	}
	h.pools.Balances.Put([]byte(account), remaining.Pack())
	return nil
}
