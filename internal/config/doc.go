// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

// Package config loads and merges the application configuration from a
// local .env file, environment variables, command-line flags, and an
// optional JSON file. Sources are merged in that order with the first
// non-zero value winning, defaults are applied afterwards, and the merged
// result is validated before use.
package config
