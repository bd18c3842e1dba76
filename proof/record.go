// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"math"

	"github.com/fxamacker/cbor/v2"
)

// NanosecondsPerSecond - timeout scale
const NanosecondsPerSecond = uint64(1000000000)

// Record - persisted form of a proof, never mutated once stored
type Record struct {
	Issuer    string  `cbor:"1,keyasint"`
	CreatedAt uint64  `cbor:"2,keyasint"`
	Timeout   *uint64 `cbor:"3,keyasint,omitempty"`
}

var encoder cbor.EncMode

func init() {
	var err error
	encoder, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic(err)
	}
}

// TimeoutFromSeconds - nil stays nil
func TimeoutFromSeconds(seconds *uint32) *uint64 {
	if nil == seconds {
		return nil
	}
	ns := uint64(*seconds) * NanosecondsPerSecond
	return &ns
}

// NewRecord - create a record, converting timeout from seconds
func NewRecord(issuer string, createdAt uint64, timeoutSeconds *uint32) *Record {
	return &Record{
		Issuer:    issuer,
		CreatedAt: createdAt,
		Timeout:   TimeoutFromSeconds(timeoutSeconds),
	}
}

// Pack - deterministic binary form for storage
func (r *Record) Pack() ([]byte, error) {
	return encoder.Marshal(r)
}

// Unpack - decode a stored record
func Unpack(buffer []byte) (*Record, error) {
	r := &Record{}
	if err := cbor.Unmarshal(buffer, r); nil != err {
		return nil, err
	}
	return r, nil
}

// ExpiresAt - last instant at which the proof is still valid
//
// saturates at the maximum timestamp instead of wrapping
func (r *Record) ExpiresAt() (uint64, bool) {
	if nil == r.Timeout {
		return 0, false
	}
	if *r.Timeout > math.MaxUint64-r.CreatedAt {
		return math.MaxUint64, true
	}
	return r.CreatedAt + *r.Timeout, true
}

// IsExpired - strictly past the expiry instant
func (r *Record) IsExpired(now uint64) bool {
	expiresAt, ok := r.ExpiresAt()
	if !ok {
		return false
	}
	return expiresAt < now
}

// View - the externally visible fields
func (r *Record) View() View {
	v := View{
		Issuer:    r.Issuer,
		CreatedAt: r.CreatedAt,
	}
	if nil != r.Timeout {
		t := *r.Timeout
		v.Timeout = &t
	}
	return v
}
