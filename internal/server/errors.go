// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated rejects a server without a router or listen
	// address.
	errNoServersAreCreated = errors.New("api server needs handlers and a listen address")
	errNoServersToRun      = errors.New("api server has no listener to run")
)
