package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"
)

// RenderFunc превращает страницу ленты в готовый HTML.
// Передаётся из обработчика, чтобы кеш хранил именно отрендеренный
// ответ, а не данные.
type RenderFunc func(*models.Page) ([]byte, error)

type FeedService interface {
	Home(ctx context.Context, page int) (*models.Page, error)
	// HomeHTML — главная лента с кешем готовой страницы.
	// Запись, попавшая в окно TTL, станет видна только после
	// истечения кеша; инвалидации по записи нет.
	HomeHTML(ctx context.Context, key string, page int, render RenderFunc) ([]byte, error)
	Group(ctx context.Context, slug string, page int) (*models.Group, *models.Page, error)
	Profile(ctx context.Context, username string, page int) (*models.User, *models.Page, error)
	// Feed — лента подписок; без кеша, новое ребро видно сразу.
	Feed(ctx context.Context, userID string, page int) (*models.Page, error)
}

type feedService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	cache     cache.Cache
	perPage   int
	ttl       time.Duration
}

func NewFeedService(postRepo repository.PostRepository, groupRepo repository.GroupRepository,
	userRepo repository.UserRepository, pageCache cache.Cache, cfg *config.Config) FeedService {
	return &feedService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		cache:     pageCache,
		perPage:   cfg.PostsPerPage,
		ttl:       cfg.CacheTTL,
	}
}

func (s *feedService) pageBounds(page int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	return page, s.perPage, (page - 1) * s.perPage
}

func newPage(posts []models.Post, total, page, perPage int) *models.Page {
	totalPages := (total + perPage - 1) / perPage
	return &models.Page{
		Posts:      posts,
		Number:     page,
		Total:      total,
		TotalPages: totalPages,
	}
}

func (s *feedService) Home(ctx context.Context, page int) (*models.Page, error) {
	page, limit, offset := s.pageBounds(page)

	posts, err := s.postRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return newPage(posts, total, page, s.perPage), nil
}

func (s *feedService) HomeHTML(ctx context.Context, key string, page int, render RenderFunc) ([]byte, error) {
	if body, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return body, nil
	} else if err != nil {
		// кеш недоступен — считаем промахом и идём в БД
		log.Warn().Err(err).Str("key", key).Msg("Кеш главной страницы недоступен")
	}

	pg, err := s.Home(ctx, page)
	if err != nil {
		return nil, err
	}

	body, err := render(pg)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, body, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Не удалось записать страницу в кеш")
	}

	return body, nil
}

func (s *feedService) Group(ctx context.Context, slug string, page int) (*models.Group, *models.Page, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	page, limit, offset := s.pageBounds(page)

	posts, err := s.postRepo.ListByGroup(ctx, group.GroupID, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.GroupID)
	if err != nil {
		return nil, nil, err
	}

	return group, newPage(posts, total, page, s.perPage), nil
}

func (s *feedService) Profile(ctx context.Context, username string, page int) (*models.User, *models.Page, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	page, limit, offset := s.pageBounds(page)

	posts, err := s.postRepo.ListByAuthor(ctx, author.UserID, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.UserID)
	if err != nil {
		return nil, nil, err
	}

	return author, newPage(posts, total, page, s.perPage), nil
}

func (s *feedService) Feed(ctx context.Context, userID string, page int) (*models.Page, error) {
	page, limit, offset := s.pageBounds(page)

	posts, err := s.postRepo.ListFeed(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountFeed(ctx, userID)
	if err != nil {
		return nil, err
	}

	return newPage(posts, total, page, s.perPage), nil
}
