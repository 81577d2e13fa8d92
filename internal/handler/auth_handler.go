package handlers

import (
	"net/http"

	"yatube/internal/forms"
	"yatube/internal/middleware"
)

func (h *Handlers) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Cfg.AuthTokenDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Page(w, http.StatusOK, "signup.html", map[string]any{
		"identity": nil,
	})
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, err)
		return
	}

	form := forms.SignupForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if res := form.Validate(); !res.Valid() {
		h.Renderer.Page(w, http.StatusOK, "signup.html", map[string]any{
			"identity": nil,
			"username": form.Username,
			"email":    form.Email,
			"errors":   res.Errors,
		})
		return
	}

	_, token, err := h.AuthService.Register(r.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		h.Renderer.Page(w, http.StatusOK, "signup.html", map[string]any{
			"identity": nil,
			"username": form.Username,
			"email":    form.Email,
			"errors":   forms.FieldErrors{"username": "Не удалось зарегистрироваться: " + err.Error()},
		})
		return
	}

	h.setAuthCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Page(w, http.StatusOK, "login.html", map[string]any{
		"identity": nil,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, err)
		return
	}

	form := forms.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	if res := form.Validate(); !res.Valid() {
		h.Renderer.Page(w, http.StatusOK, "login.html", map[string]any{
			"identity": nil,
			"username": form.Username,
			"errors":   res.Errors,
		})
		return
	}

	_, token, err := h.AuthService.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		h.Renderer.Page(w, http.StatusOK, "login.html", map[string]any{
			"identity": nil,
			"username": form.Username,
			"errors":   forms.FieldErrors{"password": "Неверное имя пользователя или пароль"},
		})
		return
	}

	h.setAuthCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}
