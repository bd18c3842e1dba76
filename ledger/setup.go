// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/background"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/storage"
)

type ledgerData struct {
	sync.RWMutex

	log *logger.L

	host *Host

	background *background.T

	// set once during initialise
	initialised bool
}

var globalData ledgerData

// Initialise - create the host over the global storage pools and
// start settling receipts
//
// storage must already be initialised
func Initialise(configuration Configuration, settleInterval time.Duration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	host, err := New(globalData.log, configuration, GlobalPools(), nil)
	if nil != err {
		return err
	}
	globalData.host = host

	if settleInterval <= 0 {
		settleInterval = defaultSettleInterval
	}

	processes := background.Processes{
		&settler{host: host, interval: settleInterval},
	}
	globalData.background = background.Start(processes, nil)

	globalData.initialised = true
	return nil
}

// Finalise - stop the settler
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.background.Stop()
	globalData.host = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Get - the running host, nil before Initialise
func Get() *Host {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.host
}

// GlobalPools - host pools in the global storage
func GlobalPools() Pools {
	return Pools{
		Balances: storage.Pool.Balances,
		Nonces:   storage.Pool.Nonces,
		Receipts: storage.Pool.Receipts,
		Host:     storage.Pool.Host,
	}
}
