package store

import (
	"time"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/redis/go-redis/v9"
)

type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
	ThemeRepository   ThemeRepository
}

func NewStorages(db *DB, rdb *redis.Client, sessionLifetime time.Duration, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		SessionRepository: NewSessionRepository(rdb, sessionLifetime, logger),
		PostRepository:    NewPostRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
		ThemeRepository:   NewThemeRepository(db, logger),
	}
}
