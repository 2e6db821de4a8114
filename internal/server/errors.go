// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("no HTTP handler to serve")
	errNoHTTPAddress = errors.New("HTTP address is not configured")
)
