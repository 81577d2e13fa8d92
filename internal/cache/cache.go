package cache

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Cache — key-value кеш с TTL. Реализации можно менять местами:
// Redis в продакшене, in-memory в тестах.
type Cache interface {
	// Get возвращает значение и признак попадания.
	// Промах (false, nil) — не ошибка.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set сохраняет значение с временем жизни ttl. Записи не
	// инвалидируются по записи в БД, только истекают по TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Ping(ctx context.Context) error
}

// PageKey собирает ключ кеша из маршрута и query-параметров, чтобы
// разные страницы одной ленты кешировались раздельно.
func PageKey(route string, query url.Values) string {
	if len(query) == 0 {
		return fmt.Sprintf("page:%s", route)
	}
	return fmt.Sprintf("page:%s?%s", route, query.Encode())
}

// PageKeyFor — ключ кеша с учётом личности запроса. Шапка страницы
// зависит от пользователя, поэтому его страница хранится отдельно
// от анонимной и от страниц других пользователей.
func PageKeyFor(route string, query url.Values, userID string) string {
	if userID == "" {
		return PageKey(route, query) + "|anon"
	}
	return PageKey(route, query) + "|user:" + userID
}
