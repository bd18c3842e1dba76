// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// RequiredPayment - an InsufficientPayment carrying the amount that
// would have been accepted
//
// errors.Is(err, InsufficientPayment) holds for this type
type RequiredPayment struct {
	Required string
}

// Error - message text includes the required amount
func (e *RequiredPayment) Error() string {
	return fmt.Sprintf("requires %s attached", e.Required)
}

// Is - allow comparison with the base payment error
func (e *RequiredPayment) Is(target error) bool {
	return target == InsufficientPayment
}
