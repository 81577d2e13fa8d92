package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	DisplayName  string    `json:"displayName" db:"display_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Group struct {
	GroupID     string `json:"groupId" db:"group_id"`
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// Post всегда читается вместе с автором и группой (JOIN в репозитории),
// поэтому отображаемые поля заполнены явно, без ленивых обращений.
type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	Text      string    `json:"text" db:"text"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	GroupID   *string   `json:"groupId" db:"group_id"`
	ImagePath string    `json:"imagePath" db:"image_path"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	AuthorUsername string `json:"authorUsername" db:"author_username"`
	GroupTitle     string `json:"groupTitle" db:"group_title"`
	GroupSlug      string `json:"groupSlug" db:"group_slug"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	AuthorUsername string `json:"authorUsername" db:"author_username"`
}

type Follow struct {
	UserID   string `json:"userId" db:"user_id"`
	AuthorID string `json:"authorId" db:"author_id"`
}

// Identity — явная личность запроса, кладётся в контекст middleware
// и передаётся в обработчики. Никакого общего изменяемого состояния.
type Identity struct {
	UserID   string
	Username string
}

// Page — страница ленты вместе с метаданными пагинации.
type Page struct {
	Posts      []Post
	Number     int
	Total      int
	TotalPages int
}

func (p *Page) HasPrev() bool { return p.Number > 1 }
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }
