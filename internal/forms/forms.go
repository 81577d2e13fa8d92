package forms

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldErrors — ошибки валидации по полям формы, для повторного
// рендера шаблона.
type FieldErrors map[string]string

type Result struct {
	Errors FieldErrors
}

func (r Result) Valid() bool { return len(r.Errors) == 0 }

// PostForm — форма создания и редактирования поста.
// Группа и картинка необязательны, текст обязателен и ограничен
// по длине на уровне схемы.
type PostForm struct {
	Text      string `validate:"required,max=20000"`
	GroupID   string `validate:"omitempty,uuid4"`
	ImageName string
}

func (f PostForm) Validate() Result {
	res := Result{Errors: FieldErrors{}}

	if err := validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Text":
				if fieldErr.Tag() == "required" {
					res.Errors["text"] = "Текст поста не может быть пустым"
				} else {
					res.Errors["text"] = "Текст поста слишком длинный"
				}
			case "GroupID":
				res.Errors["group"] = "Неверный идентификатор группы"
			}
		}
	}

	return res
}

type CommentForm struct {
	Text string `validate:"required"`
}

func (f CommentForm) Validate() Result {
	res := Result{Errors: FieldErrors{}}

	if err := validate.Struct(f); err != nil {
		res.Errors["text"] = "Текст комментария не может быть пустым"
	}

	return res
}

type SignupForm struct {
	Username string `validate:"required,min=3,max=150,alphanum"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func (f SignupForm) Validate() Result {
	res := Result{Errors: FieldErrors{}}

	if err := validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Username":
				res.Errors["username"] = "Имя пользователя: от 3 до 150 букв и цифр"
			case "Email":
				res.Errors["email"] = "Неверный email"
			case "Password":
				res.Errors["password"] = "Пароль должен быть не короче 8 символов"
			}
		}
	}

	return res
}

type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (f LoginForm) Validate() Result {
	res := Result{Errors: FieldErrors{}}

	if err := validate.Struct(f); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Username":
				res.Errors["username"] = "Укажите имя пользователя"
			case "Password":
				res.Errors["password"] = "Укажите пароль"
			}
		}
	}

	return res
}
