// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/registry"
)

// OpenRegistry - load the registry, initialising it on first use
//
// initialisation runs as a call from the owner so it is recorded like
// any other state change; a stored owner different from the configured
// one is an error
func OpenRegistry(log *logger.L, h *Host, handles registry.Handles, owner string) (*registry.Registry, error) {
	var r *registry.Registry
	err := h.View(func(registry.Clock) error {
		var err error
		r, err = registry.Load(log, handles)
		return err
	})

	switch {
	case nil == err:
		if "" != owner && owner != r.Owner() {
			log.Errorf("configured owner: %s stored owner: %s", owner, r.Owner())
			return nil, fault.OwnerMismatch
		}
		return r, nil

	case fault.IsErrNotFound(err):
		_, err = h.Execute(owner, amount.Zero, func(registry.Environment) error {
			var err error
			r, err = registry.Initialise(log, handles, owner)
			return err
		})
		if nil != err {
			return nil, err
		}
		return r, nil

	default:
		return nil, err
	}
}
