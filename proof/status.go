// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/bitmark-inc/proofd/fault"
)

// Kind - lifecycle state reported by validation
type Kind int

// all possible kinds
const (
	Invalid Kind = iota
	Terminated
	Expired
	Valid
)

// String - the JSON tag for the kind
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Terminated:
		return "Terminated"
	case Expired:
		return "Expired"
	case Valid:
		return "Valid"
	default:
		return "*Unknown*"
	}
}

func kindFromString(s string) (Kind, bool) {
	switch s {
	case "Invalid":
		return Invalid, true
	case "Terminated":
		return Terminated, true
	case "Expired":
		return Expired, true
	case "Valid":
		return Valid, true
	default:
		return Invalid, false
	}
}

// View - the externally visible fields of a record
type View struct {
	Issuer    string
	CreatedAt uint64
	Timeout   *uint64
}

// 64 bit integers are sent as strings so JavaScript clients keep precision
type viewJSON struct {
	Issuer    string  `json:"issuer"`
	CreatedAt string  `json:"createdAt"`
	Timeout   *string `json:"timeout"`
}

// MarshalJSON - convert a view to JSON
func (v View) MarshalJSON() ([]byte, error) {
	j := viewJSON{
		Issuer:    v.Issuer,
		CreatedAt: strconv.FormatUint(v.CreatedAt, 10),
	}
	if nil != v.Timeout {
		s := strconv.FormatUint(*v.Timeout, 10)
		j.Timeout = &s
	}
	return json.Marshal(j)
}

// UnmarshalJSON - convert JSON to a view
func (v *View) UnmarshalJSON(buffer []byte) error {
	var j viewJSON
	if err := json.Unmarshal(buffer, &j); nil != err {
		return err
	}
	createdAt, err := strconv.ParseUint(j.CreatedAt, 10, 64)
	if nil != err {
		return err
	}
	v.Issuer = j.Issuer
	v.CreatedAt = createdAt
	v.Timeout = nil
	if nil != j.Timeout {
		t, err := strconv.ParseUint(*j.Timeout, 10, 64)
		if nil != err {
			return err
		}
		v.Timeout = &t
	}
	return nil
}

// Status - result of validation
//
// View is meaningful only when Kind is not Invalid
type Status struct {
	Kind Kind
	View View
}

// constructors for each kind
func InvalidStatus() Status          { return Status{Kind: Invalid} }
func TerminatedStatus(v View) Status { return Status{Kind: Terminated, View: v} }
func ExpiredStatus(v View) Status    { return Status{Kind: Expired, View: v} }
func ValidStatus(v View) Status      { return Status{Kind: Valid, View: v} }

// String - for log messages
func (s Status) String() string {
	if Invalid == s.Kind {
		return s.Kind.String()
	}
	return s.Kind.String() + "(" + s.View.Issuer + "@" + strconv.FormatUint(s.View.CreatedAt, 10) + ")"
}

// MarshalJSON - "Invalid" or a single key object holding the view
func (s Status) MarshalJSON() ([]byte, error) {
	if Invalid == s.Kind {
		return json.Marshal(s.Kind.String())
	}
	return json.Marshal(map[string]View{
		s.Kind.String(): s.View,
	})
}

// UnmarshalJSON - reverse of MarshalJSON
func (s *Status) UnmarshalJSON(buffer []byte) error {
	buffer = bytes.TrimSpace(buffer)
	if len(buffer) > 0 && '"' == buffer[0] {
		var tag string
		if err := json.Unmarshal(buffer, &tag); nil != err {
			return err
		}
		if Invalid.String() != tag {
			return fault.MissingParameters
		}
		*s = InvalidStatus()
		return nil
	}

	var m map[string]View
	if err := json.Unmarshal(buffer, &m); nil != err {
		return err
	}
	if 1 != len(m) {
		return fault.MissingParameters
	}
	for tag, view := range m {
		kind, ok := kindFromString(tag)
		if !ok || Invalid == kind {
			return fault.MissingParameters
		}
		*s = Status{Kind: kind, View: view}
	}
	return nil
}
