// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/fault"
)

const (
	httpsLogName     = "http_rpc"
	readWriteTimeout = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

// Handler - HTTP routes with an access list per restricted route
type Handler interface {
	http.Handler
	SetAllow(map[string][]*net.IPNet)
}

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	addresses []string
	tlsConfig *tls.Config
	handler   http.Handler
	servers   []*http.Server
	serving   sync.WaitGroup
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

// NewHTTPS - HTTPS listener, returns nil when no listen address is set
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	_, addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	// access control matched against http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, allowed := range configuration.Allow {
		set := make([]*net.IPNet, len(allowed))
		local[path] = set
		for i, ip := range allowed {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				log.Errorf("%s: allow: %s: %q error: %s", httpsLogName, path, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}
	hdlr.SetAllow(local)

	return &httpsListener{
		log:       log,
		addresses: addresses,
		tlsConfig: tlsConfig,
		handler:   hdlr,
	}, nil
}

// Serve - start a server on every address
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, listen := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		ln, err := net.Listen("tcp", listen)
		if nil != err {
			h.log.Errorf("%s: listen: %q error: %s", httpsLogName, listen, err)
			return err
		}

		cfg := h.tlsConfig.Clone()
		cfg.NextProtos = []string{"http/1.1"}

		s := &http.Server{
			Addr:           listen,
			Handler:        h.handler,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, cfg)
		h.serving.Add(1)
		go func() {
			defer h.serving.Done()
			if err := s.Serve(tlsListener); nil != err && http.ErrServerClosed != err {
				h.log.Errorf("%s: serve error: %s", httpsLogName, err)
			}
		}()
	}

	return nil
}

// Stop - shut down all servers
func (h *httpsListener) Stop() {
	h.Lock()
	defer h.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, s := range h.servers {
		_ = s.Shutdown(ctx)
	}
	h.servers = nil
	h.serving.Wait()
}
