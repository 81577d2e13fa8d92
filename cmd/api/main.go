package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"yatube/cmd/app"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/middleware"
	"yatube/internal/render"
	"yatube/pkg/logger"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logger.Init(os.Getenv("APP_ENV"))

	if cfg.JWTSecretKey == "" {
		log.Fatal().Msg("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, pageCache, imageStorage := app.App(cfg)
	defer db.CloseDB()

	renderer, err := render.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось загрузить шаблоны")
	}

	handler := handlers.NewHandlers(repo, services, renderer, pageCache, imageStorage, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	r.HandleFunc("/follow/", handler.FollowIndex).Methods(http.MethodGet)
	r.HandleFunc("/create/", handler.CreatePostPage).Methods(http.MethodGet)
	r.HandleFunc("/create/", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/group/{slug}/", handler.GroupPosts).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/", handler.Profile).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/follow/", handler.Follow).Methods(http.MethodGet)
	r.HandleFunc("/profile/{username}/unfollow/", handler.Unfollow).Methods(http.MethodGet)
	r.HandleFunc("/posts/{post_id}/", handler.PostDetail).Methods(http.MethodGet)
	r.HandleFunc("/posts/{post_id}/edit/", handler.EditPostPage).Methods(http.MethodGet)
	r.HandleFunc("/posts/{post_id}/edit/", handler.EditPost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{post_id}/comment/", handler.AddComment).Methods(http.MethodPost)

	r.HandleFunc("/media/{object:.+}", handler.Media).Methods(http.MethodGet)

	r.HandleFunc("/about/author/", handler.AboutAuthor).Methods(http.MethodGet)
	r.HandleFunc("/about/tech/", handler.AboutTech).Methods(http.MethodGet)

	r.HandleFunc("/auth/signup/", handler.SignupPage).Methods(http.MethodGet)
	r.HandleFunc("/auth/signup/", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login/", handler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/auth/login/", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout/", handler.Logout).Methods(http.MethodGet)

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	handlerChain := middleware.Chain(
		r,
		middleware.IdentityMiddleware(services.Auth),
		middleware.LoggingMiddleware,
		middleware.RecoverMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Starting the server
	go func() {
		log.Info().Str("addr", addr).Msg("Сервер запущен")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Ошибка запуска сервера")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Останавливаем сервер")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Сервер остановлен принудительно")
	}
}
