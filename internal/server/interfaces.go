// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package server

// Server is the lifecycle contract of the transport layer. RunServer blocks
// until a stop signal arrives; Shutdown stops workers and the listener in
// order.
type Server interface {
	RunServer()
	Shutdown()
}
