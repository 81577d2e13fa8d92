package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"yatube/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// selectPosts — общий JOIN для всех выборок: автор и группа
// подтягиваются сразу, отдельных запросов на связи нет.
const selectPosts = `
	SELECT p.post_id, p.text, p.author_id, p.group_id, p.image_path, p.created_at,
	       u.username AS author_username,
	       COALESCE(g.title, '') AS group_title,
	       COALESCE(g.slug, '') AS group_slug
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
	LEFT JOIN groups g ON g.group_id = p.group_id
`

// Листинги упорядочены по убыванию времени создания; post_id разводит
// посты с одинаковой меткой времени.
const orderPosts = ` ORDER BY p.created_at DESC, p.post_id DESC LIMIT $1 OFFSET $2`

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts (post_id, text, author_id, group_id, image_path, created_at)
		VALUES (:post_id, :text, :author_id, :group_id, :image_path, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := selectPosts + ` WHERE p.post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// Update меняет text, group_id и image_path. Автор закреплён в WHERE:
// чужой запрос не затрагивает ни одной строки.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			text = :text,
			group_id = :group_id,
			image_path = :image_path
		WHERE post_id = :post_id AND author_id = :author_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновлённых строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост не изменён: %w", ErrForbidden)
	}

	return nil
}

func (r *PostRepositoryImpl) ListAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := selectPosts + orderPosts

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}
	return count, nil
}

func (r *PostRepositoryImpl) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]models.Post, error) {
	query := selectPosts + ` WHERE p.group_id = $3` + orderPosts

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset, groupID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов группы: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByGroup(ctx context.Context, groupID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов группы: %w", err)
	}
	return count, nil
}

func (r *PostRepositoryImpl) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error) {
	query := selectPosts + ` WHERE p.author_id = $3` + orderPosts

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов автора: %w", err)
	}
	return count, nil
}

func (r *PostRepositoryImpl) ListFeed(ctx context.Context, userID string, limit, offset int) ([]models.Post, error) {
	query := selectPosts + ` WHERE p.author_id IN (
		SELECT author_id FROM follows WHERE user_id = $3
	)` + orderPosts

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты подписок: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountFeed(ctx context.Context, userID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM posts WHERE author_id IN (
			SELECT author_id FROM follows WHERE user_id = $1
		)
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте ленты подписок: %w", err)
	}
	return count, nil
}
