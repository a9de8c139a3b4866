// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package models

// PaginationResult is a single page of a query result together with the
// total number of matching items.
type PaginationResult[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
