// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/counter"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/proof"
	"github.com/bitmark-inc/proofd/rpc/node"
	"github.com/bitmark-inc/proofd/rpc/proofs"
)

// route names used in the allow configuration
const (
	DetailsRoute = "details"
)

// adapts an HTTP request body and response to the RPC codec
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *internalConnection) Write(d []byte) (int, error) {
	return c.out.Write(d)
}

func (c *internalConnection) Close() error {
	return nil
}

// Handler - the HTTPS routes
type Handler struct {
	sync.RWMutex
	log                *logger.L
	server             *rpc.Server
	node               *node.Node
	proofs             *proofs.Proofs
	count              *counter.Counter
	maximumConnections uint64
	allow              map[string][]*net.IPNet
	router             chi.Router
}

// New - create the routes
func New(log *logger.L, server *rpc.Server, n *node.Node, p *proofs.Proofs, count *counter.Counter, maximumConnections uint64) *Handler {
	h := &Handler{
		log:                log,
		server:             server,
		node:               n,
		proofs:             p,
		count:              count,
		maximumConnections: maximumConnections,
		allow:              make(map[string][]*net.IPNet),
	}

	r := chi.NewRouter()
	r.Use(h.limitConnections)
	r.Post("/proofd/rpc", h.RPC)
	r.Get("/proofd/details", h.Details)
	r.Get("/proofd/proofs/{hash}", h.Proof)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		sendNotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		sendMethodNotAllowed(w)
	})
	h.router = r

	return h
}

// SetAllow - replace the access lists
func (h *Handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	defer h.Unlock()
	h.allow = allow
}

// ServeHTTP - dispatch through the router
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) limitConnections(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer h.count.Decrement()
		if h.count.Increment() > h.maximumConnections {
			sendError(w, "too many connections", http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// check the remote address against a route's access list
func (h *Handler) allowed(route string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()
	for _, cidr := range h.allow[route] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// RPC - perform a JSON RPC call
func (h *Handler) RPC(w http.ResponseWriter, r *http.Request) {
	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if err := h.server.ServeRequest(serverCodec); nil != err {
		h.log.Debugf("rpc request error: %s", err)
	}
}

// Details - Node.Info for allowed addresses
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(DetailsRoute, r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	var reply node.InfoReply
	if err := h.node.Info(&node.InfoArguments{}, &reply); nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, reply)
}

// Proof - status of a single proof
func (h *Handler) Proof(w http.ResponseWriter, r *http.Request) {
	hash, err := proof.HashFromBase58(chi.URLParam(r, "hash"))
	if nil != err {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var reply proof.Status
	if err := h.proofs.Validate(&proofs.ValidateArguments{Hash: hash}, &reply); nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, reply)
}

// send a JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// map an error class to an HTTP status
func sendFault(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case fault.RateLimiting == err:
		code = http.StatusTooManyRequests
	case fault.IsErrNotFound(err):
		code = http.StatusNotFound
	case fault.IsErrInvalid(err), fault.IsErrLength(err):
		code = http.StatusBadRequest
	case fault.IsErrPermission(err):
		code = http.StatusForbidden
	}
	sendError(w, err.Error(), code)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
