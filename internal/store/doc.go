// Package store implements the persistence layer: PostgreSQL repositories
// for users, posts, comments, and themes, and a Redis-backed session store.
//
// Repositories return the sentinel errors defined in errors.go so that the
// service and transport layers can classify failures with [errors.Is]
// without knowing anything about SQL or Redis.
package store
