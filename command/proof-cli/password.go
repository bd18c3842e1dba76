// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bitmark-inc/proofd/fault"
)

const minimumPasswordLength = 8

func readPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", fmt.Errorf("no console: %s", err)
	}
	defer tty.Close()

	fmt.Fprint(tty, prompt)
	password, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprint(tty, "\n")
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// ask twice for a new password
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password(length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", fault.InvalidPassword
	}

	verify, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", fault.WrongPassword
	}
	return password, nil
}

func promptCheckPassword() (string, error) {
	return readPassword("password: ")
}
