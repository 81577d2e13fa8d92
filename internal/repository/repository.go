package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"yatube/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	GetByID(ctx context.Context, groupID string) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	// Update применяет text/group/image только если authorID совпадает
	// с автором поста; иначе ErrForbidden и строка не меняется.
	Update(ctx context.Context, post *models.Post) error
	ListAll(ctx context.Context, limit, offset int) ([]models.Post, error)
	CountAll(ctx context.Context) (int, error)
	ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]models.Post, error)
	CountByGroup(ctx context.Context, groupID string) (int, error)
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	// ListFeed — посты авторов, на которых подписан userID.
	ListFeed(ctx context.Context, userID string, limit, offset int) ([]models.Post, error)
	CountFeed(ctx context.Context, userID string) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID string) (int, error)
}

type FollowRepository interface {
	// Follow вставляет ребро (user, author); повторная подписка
	// гасится ограничением уникальности и не является ошибкой.
	Follow(ctx context.Context, userID, authorID string) error
	// Unfollow удаляет ребро; отписка без подписки — no-op.
	Unfollow(ctx context.Context, userID, authorID string) error
	Exists(ctx context.Context, userID, authorID string) (bool, error)
}

type StatsRepository interface {
	TableCounts(ctx context.Context) (map[string]int, error)
}

type Repository struct {
	User    UserRepository
	Group   GroupRepository
	Post    PostRepository
	Comment CommentRepository
	Follow  FollowRepository
	Stats   StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Group:   NewGroupRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Follow:  NewFollowRepository(db),
		Stats:   NewStatsRepository(db),
	}
}
