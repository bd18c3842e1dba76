// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signed - authentication of state changing requests
//
// the signature covers the CBOR encoding of
//
//	[ "proofd", method, caller, nonce, payload ]
//
// where payload is the method specific argument list
package signed

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/fault"
)

const domain = "proofd"

var encoder cbor.EncMode

func init() {
	var err error
	encoder, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic(err)
	}
}

// Header - identifies and authenticates the caller
type Header struct {
	Caller    string            `json:"caller"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes that are signed
func Message(method string, caller string, nonce uint64, payload []interface{}) ([]byte, error) {
	if nil == payload {
		payload = []interface{}{}
	}
	return encoder.Marshal([]interface{}{domain, method, caller, nonce, payload})
}

// Sign - create a header for a request
func Sign(key *account.PrivateKey, method string, nonce uint64, payload []interface{}) (Header, error) {
	caller := key.Account().String()
	message, err := Message(method, caller, nonce, payload)
	if nil != err {
		return Header{}, err
	}
	return Header{
		Caller:    caller,
		Nonce:     nonce,
		Signature: key.Sign(message),
	}, nil
}

// Verify - check the signature and that the caller's network matches
func (h *Header) Verify(method string, payload []interface{}, testing bool) (*account.Account, error) {
	if "" == h.Caller || 0 == len(h.Signature) {
		return nil, fault.MissingParameters
	}

	caller, err := account.FromBase58(h.Caller)
	if nil != err {
		return nil, err
	}
	if caller.IsTesting() != testing {
		return nil, fault.AccountMismatch
	}

	message, err := Message(method, h.Caller, h.Nonce, payload)
	if nil != err {
		return nil, err
	}
	if err := caller.CheckSignature(message, h.Signature); nil != err {
		return nil, err
	}
	return caller, nil
}
