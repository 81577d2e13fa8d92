package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"yatube/internal/cache"
	"yatube/internal/forms"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/service"
)

// Index — главная лента. Готовая страница кешируется на CacheTTL,
// поэтому запись, сделанная внутри окна, появится только после
// истечения кеша. В отрендеренной странице есть персональная шапка,
// поэтому ключ включает личность запроса: каждый пользователь и
// аноним получают свою копию.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	page := pageParam(r)

	userID := ""
	if ident != nil {
		userID = ident.UserID
	}
	key := cache.PageKeyFor("/", r.URL.Query(), userID)

	body, err := h.FeedService.HomeHTML(r.Context(), key, page, func(pg *models.Page) ([]byte, error) {
		return h.Renderer.Render("index.html", map[string]any{
			"page_obj": pg,
			"identity": ident,
		})
	})
	if err != nil {
		h.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handlers) GroupPosts(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	slug := mux.Vars(r)["slug"]

	group, pg, err := h.FeedService.Group(r.Context(), slug, pageParam(r))
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.Renderer.Page(w, http.StatusOK, "group_list.html", map[string]any{
		"group":    group,
		"page_obj": pg,
		"identity": ident,
	})
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	username := mux.Vars(r)["username"]

	author, pg, err := h.FeedService.Profile(r.Context(), username, pageParam(r))
	if err != nil {
		h.renderError(w, err)
		return
	}

	following := false
	if ident != nil {
		following, _ = h.FollowService.IsFollowing(r.Context(), ident.UserID, username)
	}

	h.Renderer.Page(w, http.StatusOK, "profile.html", map[string]any{
		"author":    author,
		"page_obj":  pg,
		"following": following,
		"identity":  ident,
	})
}

func (h *Handlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	h.renderPostDetail(w, r, nil)
}

func (h *Handlers) renderPostDetail(w http.ResponseWriter, r *http.Request, formErrors forms.FieldErrors) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	postID := mux.Vars(r)["post_id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.renderError(w, err)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), postID)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.Renderer.Page(w, http.StatusOK, "post_detail.html", map[string]any{
		"post":     post,
		"comments": comments,
		"identity": ident,
		"errors":   formErrors,
	})
}

// parsePostForm разбирает форму поста: текст, группа и необязательный
// файл картинки. Форма может прийти и как multipart, и как обычная.
func (h *Handlers) parsePostForm(r *http.Request) (forms.PostForm, io.Reader, int64, error) {
	var file io.Reader
	var size int64

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			return forms.PostForm{}, nil, 0, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return forms.PostForm{}, nil, 0, err
		}
	}

	form := forms.PostForm{
		Text:    r.PostFormValue("text"),
		GroupID: r.PostFormValue("group"),
	}

	if f, header, err := r.FormFile("image"); err == nil {
		form.ImageName = header.Filename
		file = f
		size = header.Size
	}

	return form, file, size, nil
}

func (h *Handlers) postFormContext(r *http.Request, form forms.PostForm, res forms.Result, isEdit bool) map[string]any {
	ident, _ := middleware.IdentityFromContext(r.Context())

	groups, err := h.GroupRepo.List(r.Context())
	if err != nil {
		groups = []models.Group{}
	}

	return map[string]any{
		"identity": ident,
		"text":     form.Text,
		"group_id": form.GroupID,
		"groups":   groups,
		"errors":   res.Errors,
		"is_edit":  isEdit,
	}
}

func (h *Handlers) CreatePostPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireIdentity(w, r); !ok {
		return
	}

	h.Renderer.Page(w, http.StatusOK, "create_post.html",
		h.postFormContext(r, forms.PostForm{}, forms.Result{}, false))
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	form, file, size, err := h.parsePostForm(r)
	if err != nil {
		h.renderError(w, err)
		return
	}

	if res := form.Validate(); !res.Valid() {
		h.Renderer.Page(w, http.StatusOK, "create_post.html",
			h.postFormContext(r, form, res, false))
		return
	}

	_, err = h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID:  ident.UserID,
		Text:      form.Text,
		GroupID:   form.GroupID,
		ImageName: form.ImageName,
		ImageFile: file,
		ImageSize: size,
	})
	if err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/profile/"+ident.Username+"/", http.StatusFound)
}

func (h *Handlers) EditPostPage(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	postID := mux.Vars(r)["post_id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.renderError(w, err)
		return
	}

	// форму редактирования видит только автор
	if post.AuthorID != ident.UserID {
		http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
		return
	}

	groupID := ""
	if post.GroupID != nil {
		groupID = *post.GroupID
	}

	h.Renderer.Page(w, http.StatusOK, "create_post.html",
		h.postFormContext(r, forms.PostForm{Text: post.Text, GroupID: groupID}, forms.Result{}, true))
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	postID := mux.Vars(r)["post_id"]

	form, file, size, err := h.parsePostForm(r)
	if err != nil {
		h.renderError(w, err)
		return
	}

	if res := form.Validate(); !res.Valid() {
		h.Renderer.Page(w, http.StatusOK, "create_post.html",
			h.postFormContext(r, form, res, true))
		return
	}

	err = h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		PostID:    postID,
		AuthorID:  ident.UserID,
		Text:      form.Text,
		GroupID:   form.GroupID,
		ImageName: form.ImageName,
		ImageFile: file,
		ImageSize: size,
	})
	if err != nil {
		// чужой пост: строка не изменена, просто уводим на страницу
		// поста
		if errors.Is(err, repository.ErrForbidden) {
			http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
			return
		}
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	postID := mux.Vars(r)["post_id"]

	if err := r.ParseForm(); err != nil {
		h.renderError(w, err)
		return
	}

	form := forms.CommentForm{Text: r.PostFormValue("text")}
	if res := form.Validate(); !res.Valid() {
		h.renderPostDetail(w, r, res.Errors)
		return
	}

	_, err := h.CommentService.AddComment(r.Context(), postID, ident.UserID, form.Text)
	if err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/posts/"+postID+"/", http.StatusFound)
}
