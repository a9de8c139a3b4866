// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

// Package store provides the persistence layer. The same repository
// interfaces are implemented twice — once over PostgreSQL (fields stored as
// jsonb) and once over MongoDB (fields stored natively) — so the two data
// models can be run and compared side by side. The backend is selected by
// configuration at startup.
package store
