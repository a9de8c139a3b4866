// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package models

import "time"

// Comment is free-form text attached to exactly one note. Comments are
// numbered sequentially within their note.
type Comment struct {
	SpaceSlug      string    `json:"space_slug" bson:"space_slug"`
	NoteNumber     int64     `json:"note_number" bson:"note_number"`
	Number         int64     `json:"number" bson:"number"`
	AuthorUsername string    `json:"author_username" bson:"author_username"`
	Content        string    `json:"content" bson:"content"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
