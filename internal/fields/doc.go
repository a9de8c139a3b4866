// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

// Package fields implements the contract between a space's declared field
// schema and the notes stored under that space.
//
// The model is additive and write-time only: incoming payloads are validated
// against the schema in force at the moment of the write, undeclared fields
// are preserved rather than rejected, and schema evolution never touches or
// re-validates historical documents. The read path is the identity — stored
// payloads come back verbatim, orphaned fields included.
package fields
