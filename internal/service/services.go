package service

import (
	"github.com/ashabalin/themeboard/internal/config"
	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/store"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	CommentService CommentService
	ThemeService   ThemeService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, logger),
		PostService:    NewPostService(storages.PostRepository, storages.CommentRepository, cfg.FeedPageSize, logger),
		CommentService: NewCommentService(storages.CommentRepository, logger),
		ThemeService:   NewThemeService(storages.ThemeRepository, logger),
	}
}
