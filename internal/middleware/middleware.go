package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"yatube/internal/models"
	"yatube/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const identityKey contextKey = "identity"

// AuthCookieName — cookie с JWT, выдаётся при входе и регистрации.
const AuthCookieName = "auth_token"

// WithIdentity кладёт личность запроса в контекст. Экспортирована
// для тестов обработчиков.
func WithIdentity(ctx context.Context, ident *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromContext достаёт личность запроса. Отсутствие личности —
// анонимный запрос, а не ошибка.
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(*models.Identity)
	return ident, ok && ident != nil
}

// IdentityMiddleware разбирает JWT из cookie или заголовка
// Authorization и, если токен действителен, добавляет личность в
// контекст. Недействительный или отсутствующий токен не прерывает
// запрос: решение «пускать или редиректить» принимает обработчик.
func IdentityMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := ""

			if cookie, err := r.Cookie(AuthCookieName); err == nil {
				tokenString = cookie.Value
			} else if authHeader := r.Header.Get("Authorization"); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenString = parts[1]
				}
			}

			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			ident, err := authService.ParseToken(tokenString)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("latency", time.Since(start)).
			Str("ip", r.RemoteAddr).
			Msg("HTTP запрос")
	})
}

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("path", r.URL.Path).
					Msg("Паника в обработчике")

				http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
