package handlers

import (
	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/render"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/storage"
)

type Handlers struct {
	FeedService    service.FeedService
	PostService    service.PostService
	CommentService service.CommentService
	FollowService  service.FollowService
	AuthService    service.AuthService
	StatsService   service.StatsService
	GroupRepo      repository.GroupRepository
	Renderer       *render.Renderer
	Cache          cache.Cache
	Storage        storage.Storage
	Cfg            *config.Config
}

func NewHandlers(repo *repository.Repository, services *service.Service, renderer *render.Renderer,
	pageCache cache.Cache, st storage.Storage, cfg *config.Config) *Handlers {
	return &Handlers{
		FeedService:    services.Feed,
		PostService:    services.Post,
		CommentService: services.Comment,
		FollowService:  services.Follow,
		AuthService:    services.Auth,
		StatsService:   services.Stats,
		GroupRepo:      repo.Group,
		Renderer:       renderer,
		Cache:          pageCache,
		Storage:        st,
		Cfg:            cfg,
	}
}
