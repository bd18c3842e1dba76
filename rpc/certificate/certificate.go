// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - build a server TLS configuration from PEM text
//
// also returns the SHA3-256 fingerprint of the leaf certificate
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s: failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - read PEM files and call Get
func Load(log *logger.L, name, certificateFile, keyFile string) (*tls.Config, [32]byte, error) {
	certificate, err := os.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s: read certificate: %q error: %s", name, certificateFile, err)
		return nil, [32]byte{}, err
	}
	key, err := os.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s: read key: %q error: %s", name, keyFile, err)
		return nil, [32]byte{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Fingerprint - SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in proofd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
