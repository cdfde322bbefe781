// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package models

import "time"

// Session is an opaque bearer credential bound to a single user.
//
// A session is created at register/login time, revoked explicitly by logout,
// and otherwise expires passively once the current time passes ExpiredBy.
// The token value itself carries no structure; all meaning lives in the
// session store.
type Session struct {
	// Token is the opaque bearer string presented in the
	// "Authorization: Bearer <token>" header.
	Token string `json:"token"`

	// UserID is the identifier of the user the session is bound to.
	UserID int64 `json:"userId"`

	// ExpiredBy is the instant after which the token is no longer valid.
	ExpiredBy time.Time `json:"expiredBy"`
}

// Active reports whether the session is still valid at the given instant.
func (s Session) Active(now time.Time) bool {
	return now.Before(s.ExpiredBy)
}
