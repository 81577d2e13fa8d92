package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"yatube/internal/service"
)

// FollowIndex — лента постов авторов, на которых подписан
// пользователь. Не кешируется: новая подписка видна сразу.
func (h *Handlers) FollowIndex(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	pg, err := h.FeedService.Feed(r.Context(), ident.UserID, pageParam(r))
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.Renderer.Page(w, http.StatusOK, "follow.html", map[string]any{
		"page_obj": pg,
		"identity": ident,
	})
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	username := mux.Vars(r)["username"]

	err := h.FollowService.Follow(r.Context(), ident.UserID, username)
	if err != nil && !errors.Is(err, service.ErrSelfFollow) {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/profile/"+username+"/", http.StatusFound)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	username := mux.Vars(r)["username"]

	err := h.FollowService.Unfollow(r.Context(), ident.UserID, username)
	if err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/profile/"+username+"/", http.StatusFound)
}
