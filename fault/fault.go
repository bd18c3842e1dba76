// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PaymentError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AccountMismatch           = InvalidError("account network does not match chain")
	AlreadyInitialised        = ExistsError("already initialised")
	AmountOverflow            = InvalidError("amount overflow")
	CannotDecodeAccount       = InvalidError("cannot decode account")
	CertificateFileExists     = ExistsError("certificate file already exists")
	ChecksumMismatch          = ProcessError("checksum mismatch")
	CryptoFailed              = ProcessError("crypto failed")
	DatabaseIsNotSet          = ProcessError("database is not set")
	DepositNotAccepted        = InvalidError("method does not accept attached deposit")
	IdentityFileExists        = ExistsError("identity file already exists")
	IdentityNameExists        = ExistsError("identity name already exists")
	IdentityNameNotFound      = NotFoundError("identity name not found")
	InsufficientBalance       = PaymentError("insufficient balance")
	InsufficientPayment       = PaymentError("insufficient payment attached")
	InsufficientReserve       = PaymentError("balance does not cover storage reserve")
	InvalidAmount             = InvalidError("invalid amount")
	InvalidChain              = InvalidError("invalid chain")
	InvalidHashLength         = LengthError("invalid hash length")
	InvalidIPAddress          = InvalidError("invalid IP Address")
	InvalidKeyLength          = LengthError("invalid key length")
	InvalidKeyType            = InvalidError("invalid key type")
	InvalidNonce              = InvalidError("invalid nonce")
	InvalidPassword           = InvalidError("invalid password")
	InvalidSignature          = InvalidError("invalid signature")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	KeyFileExists             = ExistsError("key file already exists")
	MissingParameters         = InvalidError("missing parameters")
	NotContractOwner          = PermissionError("only owner can withdraw funds")
	NotInitialised            = NotFoundError("not initialised")
	NotPrivateKey             = InvalidError("not private key")
	NotProofIssuer            = PermissionError("only proof owner is allowed to terminate proof")
	NotPublicKey              = InvalidError("not public key")
	OwnerMismatch             = InvalidError("configured owner does not match stored owner")
	ProofAlreadyExists        = ExistsError("proof is already stored")
	ProofNotFound             = NotFoundError("proof not found")
	RateLimiting              = InvalidError("rate limiting")
	TransactionAlreadyStarted = ProcessError("transaction already started")
	TransactionNotStarted     = ProcessError("transaction not started")
	WrongPassword             = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PaymentError) Error() string    { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine the class of an error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrPayment - determine the class of an error
//
// also matches a *RequiredPayment wrapper
func IsErrPayment(e error) bool {
	switch e.(type) {
	case PaymentError, *RequiredPayment:
		return true
	default:
		return false
	}
}

// IsErrPermission - determine the class of an error
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
