// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/proofd/fault"
)

const minConnectionCount = 1

// Listener - a started server that can be shut down
type Listener interface {
	Serve() error
	Stop()
}

// normalise listen addresses and return the network for each
//
// "*:PORT" becomes "[::]:PORT" on the assumption that this listens on
// both tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	normalised := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen: %q error: %s", listen, err)
			return nil, nil, fault.InvalidIPAddress
		}

		switch {
		case "*" == host:
			host = "::"
			networks[i] = "tcp"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen: %q invalid IP: %q", listen, host)
			return nil, nil, fault.InvalidIPAddress
		}
		normalised[i] = net.JoinHostPort(host, port)
	}

	return networks, normalised, nil
}
