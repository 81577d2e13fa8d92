package service

import (
	"context"
	"fmt"
	"io"

	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type CreatePostRequest struct {
	AuthorID string
	Text     string
	GroupID  string

	ImageName string
	ImageFile io.Reader
	ImageSize int64
}

type UpdatePostRequest struct {
	PostID   string
	AuthorID string
	Text     string
	GroupID  string

	ImageName string
	ImageFile io.Reader
	ImageSize int64
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	// UpdatePost применяет текст, группу и картинку одним обновлением;
	// запрос не от автора возвращает ErrForbidden и не меняет строку.
	UpdatePost(ctx context.Context, req UpdatePostRequest) error
	GetPost(ctx context.Context, postID string) (*models.Post, error)
}

type postService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	storage   storage.Storage
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, st storage.Storage) PostService {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		storage:   st,
	}
}

// resolveGroup проверяет, что группа существует, прежде чем привязать
// к ней пост. Пустой groupID — пост без группы.
func (p *postService) resolveGroup(ctx context.Context, groupID string) (*string, error) {
	if groupID == "" {
		return nil, nil
	}

	group, err := p.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &group.GroupID, nil
}

func (p *postService) uploadImage(ctx context.Context, name string, file io.Reader, size int64) (string, error) {
	if file == nil {
		return "", nil
	}

	objectName, err := p.storage.UploadImage(ctx, name, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	return objectName, nil
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	groupID, err := p.resolveGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	imagePath, err := p.uploadImage(ctx, req.ImageName, req.ImageFile, req.ImageSize)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:      req.Text,
		AuthorID:  req.AuthorID,
		GroupID:   groupID,
		ImagePath: imagePath,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) error {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	// автор неизменен с момента создания; чужие правки отклоняются
	// до какого-либо обращения к хранилищу на запись
	if post.AuthorID != req.AuthorID {
		return repository.ErrForbidden
	}

	groupID, err := p.resolveGroup(ctx, req.GroupID)
	if err != nil {
		return err
	}

	imagePath := post.ImagePath
	if req.ImageFile != nil {
		imagePath, err = p.uploadImage(ctx, req.ImageName, req.ImageFile, req.ImageSize)
		if err != nil {
			return err
		}
	}

	post.Text = req.Text
	post.GroupID = groupID
	post.ImagePath = imagePath

	return p.postRepo.Update(ctx, post)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}
