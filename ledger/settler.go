// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"
)

// default time between settlement passes when no call has woken the
// settler
const defaultSettleInterval = 30 * time.Second

type settler struct {
	host     *Host
	interval time.Duration
}

// Run - background process: credit receipts as they are issued
func (s *settler) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.host.log
	log.Info("settler: starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-s.host.wake:
		case <-time.After(s.interval):
		}

		n, err := s.host.Settle()
		if nil != err {
			log.Errorf("settle error: %s", err)
			continue loop
		}
		if n > 0 {
			log.Infof("settled: %d receipts", n)
		}
	}

	log.Info("settler: stopped")
}
