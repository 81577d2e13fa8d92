package forms

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPostForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		form       PostForm
		valid      bool
		errorField string
	}{
		{
			name:  "Обычный пост без группы",
			form:  PostForm{Text: "Тестовый пост"},
			valid: true,
		},
		{
			name:  "Пост с группой",
			form:  PostForm{Text: "Тестовый пост", GroupID: uuid.New().String()},
			valid: true,
		},
		{
			name:       "Пустой текст",
			form:       PostForm{Text: ""},
			valid:      false,
			errorField: "text",
		},
		{
			name:  "Текст на границе длины",
			form:  PostForm{Text: strings.Repeat("я", 20000)},
			valid: true,
		},
		{
			name:       "Текст длиннее допустимого",
			form:       PostForm{Text: strings.Repeat("я", 20001)},
			valid:      false,
			errorField: "text",
		},
		{
			name:       "Мусорный идентификатор группы",
			form:       PostForm{Text: "Тестовый пост", GroupID: "not-a-uuid"},
			valid:      false,
			errorField: "group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.form.Validate()

			assert.Equal(t, tt.valid, res.Valid())
			if tt.errorField != "" {
				assert.Contains(t, res.Errors, tt.errorField)
			}
		})
	}
}

func TestCommentForm_Validate(t *testing.T) {
	assert.True(t, CommentForm{Text: "Тестовый комментарий"}.Validate().Valid())
	assert.False(t, CommentForm{Text: ""}.Validate().Valid())
}

func TestSignupForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		form       SignupForm
		valid      bool
		errorField string
	}{
		{
			name:  "Корректная форма",
			form:  SignupForm{Username: "leo", Email: "leo@example.com", Password: "password123"},
			valid: true,
		},
		{
			name:       "Слишком короткое имя",
			form:       SignupForm{Username: "ab", Email: "leo@example.com", Password: "password123"},
			valid:      false,
			errorField: "username",
		},
		{
			name:       "Неверный email",
			form:       SignupForm{Username: "leo", Email: "not-an-email", Password: "password123"},
			valid:      false,
			errorField: "email",
		},
		{
			name:       "Короткий пароль",
			form:       SignupForm{Username: "leo", Email: "leo@example.com", Password: "short"},
			valid:      false,
			errorField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.form.Validate()

			assert.Equal(t, tt.valid, res.Valid())
			if tt.errorField != "" {
				assert.Contains(t, res.Errors, tt.errorField)
			}
		})
	}
}

func TestLoginForm_Validate(t *testing.T) {
	assert.True(t, LoginForm{Username: "leo", Password: "password123"}.Validate().Valid())

	res := LoginForm{}.Validate()
	assert.False(t, res.Valid())
	assert.Contains(t, res.Errors, "username")
	assert.Contains(t, res.Errors, "password")
}
