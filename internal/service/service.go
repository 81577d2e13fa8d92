package service

import (
	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type Service struct {
	Feed    FeedService
	Post    PostService
	Comment CommentService
	Follow  FollowService
	Auth    AuthService
	Stats   StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, pageCache cache.Cache) *Service {
	return &Service{
		Feed:    NewFeedService(rep.Post, rep.Group, rep.User, pageCache, cfg),
		Post:    NewPostService(rep.Post, rep.Group, storage),
		Comment: NewCommentService(rep.Comment, rep.Post),
		Follow:  NewFollowService(rep.Follow, rep.User),
		Auth:    NewAuthService(rep.User, cfg),
		Stats:   NewStatsService(rep.Stats),
	}
}
