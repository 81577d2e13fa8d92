package repository

import "errors"

var (
	// ErrNotFound — запись не найдена (неизвестный пост, группа,
	// пользователь). Обработчики отвечают на неё страницей 404.
	ErrNotFound = errors.New("запись не найдена")

	// ErrForbidden — попытка изменить чужой пост.
	ErrForbidden = errors.New("доступ запрещён")
)
