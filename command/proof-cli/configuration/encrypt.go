// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/proofd/account"
	"github.com/bitmark-inc/proofd/fault"
)

// argon2id parameters
const (
	keyTime    = 3
	keyMemory  = 64 * 1024 // KiB
	keyThreads = 4
	keyLength  = 32

	saltLength  = 32
	nonceLength = 24
)

// Private - decrypted identity
type Private struct {
	PrivateKey  *account.PrivateKey `json:"-"`
	Account     string              `json:"account"`
	Seed        string              `json:"seed"`
	Description string              `json:"description"`
}

// Salt - random argon2 salt
type Salt [saltLength]byte

// MakeSalt - fresh random salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := rand.Read(salt[:]); nil != err {
		return nil, err
	}
	return salt, nil
}

// String - hex text
func (salt *Salt) String() string {
	return hex.EncodeToString(salt[:])
}

// UnmarshalText - decode hex text
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	if saltLength != len(buffer) {
		return fault.InvalidKeyLength
	}
	copy(salt[:], buffer)
	return nil
}

// check if password unlocks data in the configuration file
func decryptIdentity(password string, identity *Identity) (*Private, error) {
	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if nil != err || "" == identity.Data {
		return nil, fault.NotPrivateKey
	}

	seed, err := decryptData(identity.Data, generateKey(password, salt))
	if nil != err {
		return nil, fault.WrongPassword
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, err
	}

	return &Private{
		PrivateKey:  privateKey,
		Account:     privateKey.Account().String(),
		Seed:        seed,
		Description: identity.Description,
	}, nil
}

func hashPassword(password string) (*Salt, *[keyLength]byte, error) {
	if "" == password {
		return nil, nil, fault.InvalidPassword
	}
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}
	return salt, generateKey(password, salt), nil
}

func generateKey(password string, salt *Salt) *[keyLength]byte {
	hash := argon2.IDKey([]byte(password), salt[:], keyTime, keyMemory, keyThreads, keyLength)

	var secretKey [keyLength]byte
	copy(secretKey[:], hash)
	return &secretKey
}

// encrypt a string and convert to hex
//
// output is nonce || sealed data
func encryptData(data string, secretKey *[keyLength]byte) (string, error) {
	l := len(data)
	if l < 32 || l >= 16384 {
		return "", fault.CryptoFailed
	}

	var nonce [nonceLength]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.CryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)
	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[keyLength]byte) (string, error) {
	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err {
		return "", err
	}
	if len(encrypted) <= nonceLength {
		return "", fault.CryptoFailed
	}

	var nonce [nonceLength]byte
	copy(nonce[:], encrypted[:nonceLength])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceLength:], &nonce, secretKey)
	if !ok {
		return "", fault.CryptoFailed
	}
	return string(decrypted), nil
}
