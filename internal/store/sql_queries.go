// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package store

const (
	createUser = `INSERT INTO users (username, token)
    VALUES ($1, $2)
    RETURNING username, token, created_at;`

	deleteUser = `DELETE FROM users WHERE username = $1;`

	listUsers = `SELECT username, token, created_at
    FROM users
    ORDER BY username;`

	createSpace = `INSERT INTO spaces (slug, title, members, fields)
    VALUES ($1, $2, $3, $4)
    RETURNING created_at;`

	updateSpaceMembers = `UPDATE spaces SET members = $2 WHERE slug = $1;`

	updateSpaceFields = `UPDATE spaces SET fields = $2 WHERE slug = $1;`

	listSpaces = `SELECT slug, title, members, fields, created_at
    FROM spaces
    ORDER BY slug;`

	createNote = `INSERT INTO notes (space_slug, number, author_username, created_at, fields)
    VALUES ($1, $2, $3, $4, $5);`

	getNote = `SELECT space_slug, number, author_username, created_at, fields
    FROM notes
    WHERE space_slug = $1 AND number = $2;`

	updateNoteFields = `UPDATE notes SET fields = $3 WHERE space_slug = $1 AND number = $2;`

	createComment = `INSERT INTO comments (space_slug, note_number, number, author_username, content, created_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	// Counter upserts rely on the single-row primary key: the conflicting
	// UPDATE and the INSERT race resolve to one atomic increment per caller.
	nextNoteNumber = `INSERT INTO note_counters (space_slug, seq)
    VALUES ($1, 1)
    ON CONFLICT (space_slug) DO UPDATE SET seq = note_counters.seq + 1
    RETURNING seq;`

	nextCommentNumber = `INSERT INTO comment_counters (space_slug, note_number, seq)
    VALUES ($1, $2, 1)
    ON CONFLICT (space_slug, note_number) DO UPDATE SET seq = comment_counters.seq + 1
    RETURNING seq;`
)
