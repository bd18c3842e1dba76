// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - native token quantities
//
// all balances, deposits and prices are unsigned 256 bit integers in
// the smallest unit; the text form is a plain decimal string so JSON
// clients never lose precision
package amount

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/proofd/fault"
)

// Amount - an unsigned 256 bit quantity
type Amount struct {
	value uint256.Int
}

// byte length of the packed form
const packedLength = 32

// Zero - the zero amount
var Zero = Amount{}

// New - amount from a uint64
func New(n uint64) Amount {
	a := Amount{}
	a.value.SetUint64(n)
	return a
}

// FromString - parse a decimal string
func FromString(s string) (Amount, error) {
	a := Amount{}
	if "" == s {
		return a, fault.InvalidAmount
	}
	if err := a.value.SetFromDecimal(s); nil != err {
		return Amount{}, fault.InvalidAmount
	}
	return a, nil
}

// MustFromString - for constants and tests
func MustFromString(s string) Amount {
	a, err := FromString(s)
	if nil != err {
		panic(err)
	}
	return a
}

// Add - sum; fails on overflow
func (a Amount) Add(b Amount) (Amount, error) {
	r := Amount{}
	if _, overflow := r.value.AddOverflow(&a.value, &b.value); overflow {
		return Amount{}, fault.AmountOverflow
	}
	return r, nil
}

// Sub - difference; ok is false if b > a
func (a Amount) Sub(b Amount) (Amount, bool) {
	r := Amount{}
	if _, underflow := r.value.SubOverflow(&a.value, &b.value); underflow {
		return Amount{}, false
	}
	return r, true
}

// MulUint64 - scale by an integer; fails on overflow
func (a Amount) MulUint64(n uint64) (Amount, error) {
	r := Amount{}
	m := uint256.NewInt(n)
	if _, overflow := r.value.MulOverflow(&a.value, m); overflow {
		return Amount{}, fault.AmountOverflow
	}
	return r, nil
}

// Cmp - returns -1, 0, +1
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(&b.value)
}

// LessThan - a < b
func (a Amount) LessThan(b Amount) bool {
	return a.value.Lt(&b.value)
}

// IsZero - true for zero
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// String - decimal representation
func (a Amount) String() string {
	return a.value.Dec()
}

// Pack - fixed length big endian bytes
func (a Amount) Pack() []byte {
	b := a.value.Bytes32()
	return b[:]
}

// Unpack - reverse of Pack
func Unpack(buffer []byte) (Amount, error) {
	if packedLength != len(buffer) {
		return Amount{}, fault.InvalidAmount
	}
	a := Amount{}
	a.value.SetBytes(buffer)
	return a, nil
}

// MarshalText - convert amount to decimal text
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert decimal text to amount
func (a *Amount) UnmarshalText(s []byte) error {
	v, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = v
	return nil
}
