// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package models

import "time"

// User is an account identified by its natural key, the username.
// Authentication is deliberately simple: each user carries a single static
// token that doubles as their credential.
type User struct {
	Username string `json:"username" bson:"username"`

	// Token is the user's static authentication credential. Never serialized
	// in API responses.
	Token string `json:"-" bson:"token"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// AdminUsername is the reserved username holding administrative privileges.
const AdminUsername = "admin"

// IsAdmin reports whether the user holds administrative privileges.
func (u User) IsAdmin() bool { return u.Username == AdminUsername }
