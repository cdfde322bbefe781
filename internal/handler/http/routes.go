package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", idHeader},
	}))

	router.Get("/", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/themes", h.themes)
		r.Get("/posts", h.posts)
		r.Get("/post/{postID}", h.getPost)
	})

	// routes behind the session hard gate; the gate runs before any body
	// validation, so an unauthenticated malformed request fails with 401
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)

		r.Post("/post", h.createPost)
		r.Put("/post/{postID}", h.updatePost)
		r.Delete("/post/{postID}", h.deletePost)
		r.Post("/post/like/{postID}", h.likePost)

		r.Post("/comment/{postID}", h.createComment)
		r.Put("/comment/{commentID}", h.editComment)
		r.Delete("/comment/{commentID}", h.deleteComment)
		r.Post("/comment/like/{commentID}", h.likeComment)
	})

	return router
}
