// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package models

import "time"

// Note is a document stored under a space. Its envelope (space slug, number,
// author, creation time) is fixed; the Fields payload is open-ended and is
// only ever validated at write time against the schema in force at that
// moment. Stored payloads are returned verbatim on read, including fields no
// longer declared in the schema.
//
// Natural key: (SpaceSlug, Number). Number is assigned once at creation from
// the space's counter and is unique within the space.
type Note struct {
	SpaceSlug      string    `json:"space_slug" bson:"space_slug"`
	Number         int64     `json:"number" bson:"number"`
	AuthorUsername string    `json:"author_username" bson:"author_username"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	Fields         FieldMap  `json:"fields" bson:"fields"`
}
