// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package config

import "errors"

var (
	errNoServerAddress = errors.New("server address is not specified")
	errNoDatabaseDSN   = errors.New("database DSN is not specified")
	errNoRedisAddress  = errors.New("redis address is not specified")
)
