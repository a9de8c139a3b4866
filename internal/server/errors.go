// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package server

import "errors"

var errNoHTTPAddress = errors.New("no HTTP listen address configured")
