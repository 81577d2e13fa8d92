package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// fakePostRepo держит посты в памяти, свежие первыми, как их отдаёт
// настоящий репозиторий.
type fakePostRepo struct {
	posts  []models.Post
	nextID int
}

func (f *fakePostRepo) addPost(text, authorID string, groupID *string) models.Post {
	post := models.Post{Text: text, AuthorID: authorID, GroupID: groupID}
	_ = f.Create(context.Background(), &post)
	return post
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	f.nextID++
	if post.PostID == "" {
		post.PostID = fmt.Sprintf("post-%d", f.nextID)
	}
	f.posts = append([]models.Post{*post}, f.posts...)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, postID string) (*models.Post, error) {
	for i := range f.posts {
		if f.posts[i].PostID == postID {
			post := f.posts[i]
			return &post, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePostRepo) Update(_ context.Context, post *models.Post) error {
	for i := range f.posts {
		if f.posts[i].PostID == post.PostID {
			if f.posts[i].AuthorID != post.AuthorID {
				return repository.ErrForbidden
			}
			f.posts[i].Text = post.Text
			f.posts[i].GroupID = post.GroupID
			f.posts[i].ImagePath = post.ImagePath
			return nil
		}
	}
	return repository.ErrForbidden
}

func pageSlice(posts []models.Post, limit, offset int) []models.Post {
	if offset >= len(posts) {
		return []models.Post{}
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

func (f *fakePostRepo) filter(keep func(models.Post) bool) []models.Post {
	matched := []models.Post{}
	for _, post := range f.posts {
		if keep(post) {
			matched = append(matched, post)
		}
	}
	return matched
}

func (f *fakePostRepo) ListAll(_ context.Context, limit, offset int) ([]models.Post, error) {
	return pageSlice(f.posts, limit, offset), nil
}

func (f *fakePostRepo) CountAll(_ context.Context) (int, error) {
	return len(f.posts), nil
}

func (f *fakePostRepo) ListByGroup(_ context.Context, groupID string, limit, offset int) ([]models.Post, error) {
	matched := f.filter(func(p models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	})
	return pageSlice(matched, limit, offset), nil
}

func (f *fakePostRepo) CountByGroup(_ context.Context, groupID string) (int, error) {
	return len(f.filter(func(p models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	})), nil
}

func (f *fakePostRepo) ListByAuthor(_ context.Context, authorID string, limit, offset int) ([]models.Post, error) {
	matched := f.filter(func(p models.Post) bool { return p.AuthorID == authorID })
	return pageSlice(matched, limit, offset), nil
}

func (f *fakePostRepo) CountByAuthor(_ context.Context, authorID string) (int, error) {
	return len(f.filter(func(p models.Post) bool { return p.AuthorID == authorID })), nil
}

// Лента подписок берёт рёбра из fakeFollowRepo, общего для теста.
type fakeFeedPostRepo struct {
	*fakePostRepo
	follows *fakeFollowRepo
}

func (f *fakeFeedPostRepo) feedPosts(userID string) []models.Post {
	return f.filter(func(p models.Post) bool {
		return f.follows.edges[userID][p.AuthorID]
	})
}

func (f *fakeFeedPostRepo) ListFeed(_ context.Context, userID string, limit, offset int) ([]models.Post, error) {
	return pageSlice(f.feedPosts(userID), limit, offset), nil
}

func (f *fakeFeedPostRepo) CountFeed(_ context.Context, userID string) (int, error) {
	return len(f.feedPosts(userID)), nil
}

func (f *fakePostRepo) ListFeed(_ context.Context, _ string, _, _ int) ([]models.Post, error) {
	return []models.Post{}, nil
}

func (f *fakePostRepo) CountFeed(_ context.Context, _ string) (int, error) {
	return 0, nil
}

type fakeCommentRepo struct {
	comments []models.Comment
	nextID   int
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	f.nextID++
	if comment.CommentID == "" {
		comment.CommentID = fmt.Sprintf("comment-%d", f.nextID)
	}
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) ListByPost(_ context.Context, postID string) ([]models.Comment, error) {
	matched := []models.Comment{}
	for _, comment := range f.comments {
		if comment.PostID == postID {
			matched = append(matched, comment)
		}
	}
	return matched, nil
}

func (f *fakeCommentRepo) CountByPost(ctx context.Context, postID string) (int, error) {
	comments, _ := f.ListByPost(ctx, postID)
	return len(comments), nil
}

type fakeGroupRepo struct {
	groups []models.Group
}

func (f *fakeGroupRepo) Create(_ context.Context, group *models.Group) error {
	f.groups = append(f.groups, *group)
	return nil
}

func (f *fakeGroupRepo) GetBySlug(_ context.Context, slug string) (*models.Group, error) {
	for i := range f.groups {
		if f.groups[i].Slug == slug {
			group := f.groups[i]
			return &group, nil
		}
	}
	return nil, fmt.Errorf("группа %s: %w", slug, repository.ErrNotFound)
}

func (f *fakeGroupRepo) GetByID(_ context.Context, groupID string) (*models.Group, error) {
	for i := range f.groups {
		if f.groups[i].GroupID == groupID {
			group := f.groups[i]
			return &group, nil
		}
	}
	return nil, fmt.Errorf("группа с ID %s: %w", groupID, repository.ErrNotFound)
}

func (f *fakeGroupRepo) List(_ context.Context) ([]models.Group, error) {
	return f.groups, nil
}

type fakeUserRepo struct {
	users  []models.User
	nextID int
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User, _ string) error {
	f.nextID++
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, userID string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].UserID == userID {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("пользователь с ID %s: %w", userID, repository.ErrNotFound)
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("пользователь %s: %w", username, repository.ErrNotFound)
}

func (f *fakeUserRepo) VerifyPassword(_ context.Context, username, _ string) (*models.User, error) {
	return f.GetUserByUsername(context.Background(), username)
}

type fakeFollowRepo struct {
	edges map[string]map[string]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[string]map[string]bool)}
}

func (f *fakeFollowRepo) Follow(_ context.Context, userID, authorID string) error {
	if f.edges[userID] == nil {
		f.edges[userID] = make(map[string]bool)
	}
	f.edges[userID][authorID] = true
	return nil
}

func (f *fakeFollowRepo) Unfollow(_ context.Context, userID, authorID string) error {
	delete(f.edges[userID], authorID)
	return nil
}

func (f *fakeFollowRepo) Exists(_ context.Context, userID, authorID string) (bool, error) {
	return f.edges[userID][authorID], nil
}

type fakeStorage struct {
	uploaded []string
}

func (f *fakeStorage) UploadImage(_ context.Context, fileName string, _ io.Reader, _ int64) (string, error) {
	objectName := "posts/" + fileName
	f.uploaded = append(f.uploaded, objectName)
	return objectName, nil
}

func (f *fakeStorage) GetImage(_ context.Context, objectName string) (io.ReadCloser, string, error) {
	for _, name := range f.uploaded {
		if name == objectName {
			return io.NopCloser(strings.NewReader("image-bytes")), "image/gif", nil
		}
	}
	return nil, "", fmt.Errorf("объект %s не найден", objectName)
}

func (f *fakeStorage) DeleteImage(_ context.Context, _ string) error {
	return nil
}
