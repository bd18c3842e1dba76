// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof_test

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/proof"
)

const createdAt = uint64(123456)

func TestKeccak256(t *testing.T) {
	h := proof.Keccak256([]byte{})
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", hex.EncodeToString(h[:]), "wrong empty hash")

	assert.Equal(t, proof.Keccak256([]byte("Nha Trang|s3cr3t")), proof.PresenceHash("Nha Trang", "s3cr3t"), "wrong presence hash")
}

func TestHashText(t *testing.T) {
	h := proof.Keccak256([]byte("12345"))

	back, err := proof.HashFromBase58(h.String())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, h, back, "wrong hash")

	_, err = proof.HashFromBytes(h[:31])
	assert.Equal(t, fault.InvalidHashLength, err, "short hash accepted")

	var j struct {
		Hash proof.Hash `json:"hash"`
	}
	err = json.Unmarshal([]byte(`{"hash":"`+h.String()+`"}`), &j)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, h, j.Hash, "wrong JSON hash")

	err = json.Unmarshal([]byte(`{"hash":"3mJr7AoUXx2Wqd"}`), &j)
	assert.NotNil(t, err, "short JSON hash accepted")
}

func TestRecordPack(t *testing.T) {
	timeout := uint32(5)
	items := []*proof.Record{
		proof.NewRecord("alice.testnet", createdAt, nil),
		proof.NewRecord("alice.testnet", createdAt, &timeout),
	}

	for i, r := range items {
		packed, err := r.Pack()
		assert.Nil(t, err, "%d: pack error", i)

		again, err := r.Pack()
		assert.Nil(t, err, "%d: pack error", i)
		assert.Equal(t, packed, again, "%d: encoding not deterministic", i)

		back, err := proof.Unpack(packed)
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, r, back, "%d: wrong record", i)
	}

	assert.Equal(t, uint64(5000000000), *items[1].Timeout, "wrong timeout scale")

	_, err := proof.Unpack([]byte{0xff, 0x00})
	assert.NotNil(t, err, "garbage unpacked")
}

func TestExpiry(t *testing.T) {
	timeout := uint32(5)
	r := proof.NewRecord("alice.testnet", createdAt, &timeout)
	boundary := createdAt + 5*proof.NanosecondsPerSecond

	assert.False(t, r.IsExpired(createdAt), "expired at creation")
	assert.False(t, r.IsExpired(boundary-1), "expired before boundary")
	assert.False(t, r.IsExpired(boundary), "expired at boundary")
	assert.True(t, r.IsExpired(boundary+1), "not expired after boundary")

	forever := proof.NewRecord("alice.testnet", createdAt, nil)
	assert.False(t, forever.IsExpired(math.MaxUint64), "no timeout expired")

	huge := uint64(math.MaxUint64 - 10)
	saturated := &proof.Record{Issuer: "alice.testnet", CreatedAt: createdAt, Timeout: &huge}
	expiresAt, ok := saturated.ExpiresAt()
	assert.True(t, ok, "missing expiry")
	assert.Equal(t, uint64(math.MaxUint64), expiresAt, "expiry wrapped")
	assert.False(t, saturated.IsExpired(createdAt+1), "wrapped expiry")
}

func TestStatusJSON(t *testing.T) {
	timeout := uint64(5000000000)
	items := []struct {
		status proof.Status
		json   string
	}{
		{proof.InvalidStatus(), `"Invalid"`},
		{
			proof.ValidStatus(proof.View{Issuer: "alice.testnet", CreatedAt: createdAt}),
			`{"Valid":{"issuer":"alice.testnet","createdAt":"123456","timeout":null}}`,
		},
		{
			proof.ExpiredStatus(proof.View{Issuer: "alice.testnet", CreatedAt: createdAt, Timeout: &timeout}),
			`{"Expired":{"issuer":"alice.testnet","createdAt":"123456","timeout":"5000000000"}}`,
		},
		{
			proof.TerminatedStatus(proof.View{Issuer: "alice.testnet", CreatedAt: createdAt}),
			`{"Terminated":{"issuer":"alice.testnet","createdAt":"123456","timeout":null}}`,
		},
	}

	for i, item := range items {
		buffer, err := json.Marshal(item.status)
		assert.Nil(t, err, "%d: marshal error", i)
		assert.Equal(t, item.json, string(buffer), "%d: wrong JSON", i)

		var back proof.Status
		err = json.Unmarshal(buffer, &back)
		assert.Nil(t, err, "%d: unmarshal error", i)
		assert.Equal(t, item.status, back, "%d: wrong status", i)
	}

	var s proof.Status
	assert.NotNil(t, json.Unmarshal([]byte(`"Valid"`), &s), "bare Valid accepted")
	assert.NotNil(t, json.Unmarshal([]byte(`{"Pending":{"issuer":"x","createdAt":"1","timeout":null}}`), &s), "unknown kind accepted")
}
