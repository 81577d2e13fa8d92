package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow полагается на ограничение unique_following: при гонке двух
// одинаковых подписок вторая вставка тихо не проходит, ребро остаётся
// одно. Никаких блокировок на уровне приложения.
func (r *followRepository) Follow(ctx context.Context, userID, authorID string) error {
	query := `
		INSERT INTO follows (user_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT unique_following DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, userID, authorID string) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	// Ноль удалённых строк — не ошибка: отписка без подписки no-op.
	_, err := r.db.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	query := `SELECT COUNT(*) FROM follows WHERE user_id = $1 AND author_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return count > 0, nil
}
