package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/repository"
)

// LoginURL — точка входа аутентификации, сюда уводят
// неаутентифицированные запросы к защищённым действиям.
const LoginURL = "/auth/login/"

// requireIdentity возвращает личность запроса либо редиректит на
// страницу входа. Редирект без каких-либо изменений состояния.
func (h *Handlers) requireIdentity(w http.ResponseWriter, r *http.Request) (*models.Identity, bool) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, LoginURL, http.StatusFound)
		return nil, false
	}
	return ident, true
}

// renderError — 404 для неизвестных сущностей, 500 для остального.
func (h *Handlers) renderError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		h.Renderer.NotFound(w)
		return
	}

	log.Error().Err(err).Msg("Ошибка обработки запроса")
	http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
