// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/proofd/fixtures"
	"github.com/bitmark-inc/proofd/rpc/certificate"
)

func newPair(t *testing.T) ([]byte, []byte) {
	cer, key, err := certgen.NewTLSCertPair("proofd test", time.Now().Add(time.Hour), false, []string{"localhost"})
	if nil != err {
		t.Fatalf("certgen error: %s", err)
	}
	return cer, key
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := newPair(t)

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", string(cer), string(key))
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair(cer, key)

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetBadPair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "accepted garbage")
}

func TestLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := newPair(t)
	dir := t.TempDir()
	cerFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	assert.Nil(t, os.WriteFile(cerFile, cer, 0644), "write certificate")
	assert.Nil(t, os.WriteFile(keyFile, key, 0600), "write key")

	_, fingerprint, err := certificate.Load(logger.New(fixtures.LogCategory), "test", cerFile, keyFile)
	assert.Nil(t, err, "wrong Load")
	assert.NotEqual(t, [32]byte{}, fingerprint, "empty fingerprint")

	_, _, err = certificate.Load(logger.New(fixtures.LogCategory), "test", filepath.Join(dir, "missing"), keyFile)
	assert.True(t, os.IsNotExist(err), "wrong error: %v", err)
}
