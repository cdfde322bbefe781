// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package models

// Request DTOs decoded from HTTP bodies. The `validate` tags are enforced by
// the handler layer before any service code runs; a handler may rely on a
// decoded request having passed them.

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreatePostRequest is the body of POST /post.
type CreatePostRequest struct {
	Message   string   `json:"message" validate:"required,max=4096"`
	Images    []string `json:"images" validate:"omitempty,dive,uri"`
	Anonymous bool     `json:"anonymous"`
	ThemeID   int64    `json:"themeId" validate:"required"`
}

// UpdatePostRequest is the body of PUT /post/{postID}.
// Nil fields are left unchanged.
type UpdatePostRequest struct {
	Message   *string  `json:"message" validate:"omitempty,max=4096"`
	Images    []string `json:"images" validate:"omitempty,dive,uri"`
	Anonymous *bool    `json:"anonymous"`
}

// LikeRequest is the body of POST /post/like/{postID} and
// POST /comment/like/{commentID}. Like toggles the relation: true likes,
// false unlikes. The boolean is passed through to the store unchanged.
type LikeRequest struct {
	Like *bool `json:"like" validate:"required"`
}

// CreateCommentRequest is the body of POST /comment/{postID}.
type CreateCommentRequest struct {
	Message   string   `json:"message" validate:"required,max=4096"`
	Images    []string `json:"images" validate:"omitempty,dive,uri"`
	Anonymous bool     `json:"anonymous"`
}

// EditCommentRequest is the body of PUT /comment/{commentID}.
type EditCommentRequest struct {
	Message   *string  `json:"message" validate:"omitempty,max=4096"`
	Images    []string `json:"images" validate:"omitempty,dive,uri"`
	Anonymous *bool    `json:"anonymous"`
}
