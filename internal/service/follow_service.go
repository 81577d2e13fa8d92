package service

import (
	"context"
	"errors"

	"yatube/internal/repository"
)

// ErrSelfFollow — подписка на самого себя запрещена.
var ErrSelfFollow = errors.New("нельзя подписаться на самого себя")

type FollowService interface {
	// Follow идемпотентна: повторная подписка не создаёт второго
	// ребра и не возвращает ошибку.
	Follow(ctx context.Context, userID, authorUsername string) error
	// Unfollow идемпотентна: отписка без подписки — no-op.
	Unfollow(ctx context.Context, userID, authorUsername string) error
	IsFollowing(ctx context.Context, userID, authorUsername string) (bool, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) Follow(ctx context.Context, userID, authorUsername string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	if author.UserID == userID {
		return ErrSelfFollow
	}

	return s.followRepo.Follow(ctx, userID, author.UserID)
}

func (s *followService) Unfollow(ctx context.Context, userID, authorUsername string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	return s.followRepo.Unfollow(ctx, userID, author.UserID)
}

func (s *followService) IsFollowing(ctx context.Context, userID, authorUsername string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return false, err
	}

	return s.followRepo.Exists(ctx, userID, author.UserID)
}
