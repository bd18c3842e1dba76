// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/counter"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/ledger"
	"github.com/bitmark-inc/proofd/mode"
	"github.com/bitmark-inc/proofd/registry"
	"github.com/bitmark-inc/proofd/rpc/certificate"
	"github.com/bitmark-inc/proofd/rpc/handler"
	"github.com/bitmark-inc/proofd/rpc/listeners"
	"github.com/bitmark-inc/proofd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"
)

type rpcData struct {
	sync.RWMutex

	log *logger.L

	// count of active connections over both listeners
	connections counter.Counter

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

var globalData rpcData

// Initialise - start the RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	l ledger.Ledger,
	contract registry.Contract,
) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	services := server.NewServices(log, version, &globalData.connections, l, contract, mode.IsTesting)

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.connections,
		server.Create(services),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.Load(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			stopAll()
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		h := handler.New(log, server.Create(services), services.Node, services.Proofs, &globalData.connections, httpsConfiguration.MaximumConnections)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, h)
		if nil != err {
			stopAll()
			return err
		}
		if err := httpsListener.Serve(); nil != err {
			stopAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// caller holds the lock
func stopAll() {
	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil
}
