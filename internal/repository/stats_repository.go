package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

// domainTables — таблицы, чьи размеры отдаёт /health.
var domainTables = []string{"users", "groups", "posts", "comments", "follows"}

func (r *statsRepository) TableCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(domainTables))

	for _, table := range domainTables {
		var count int
		// имя таблицы из фиксированного списка, не из запроса
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)

		if err := r.db.GetContext(ctx, &count, query); err != nil {
			return nil, fmt.Errorf("ошибка при подсчёте строк таблицы %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}
