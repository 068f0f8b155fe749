// Package service contains the entity services enforcing validation and the
// ownership gate on mutations.
package service

import (
	"context"

	"bulletin/internal/models"
	"bulletin/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	hasher   PasswordHasher
}

type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
	Password string
}

type UpdatePostInput struct {
	PostID   uint
	Title    string
	Content  string
	AuthorID string
	Password string
}

type DeletePostInput struct {
	PostID   uint
	AuthorID string
	Password string
}

func NewPostService(postRepo repository.PostRepository, hasher PasswordHasher) *PostService {
	return &PostService{
		postRepo: postRepo,
		hasher:   hasher,
	}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.AuthorID == "" {
		return nil, models.NewValidationError("Author ID is required")
	}
	if in.Password == "" {
		return nil, models.NewValidationError("Password is required")
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
		Password: hashed,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(post, in.AuthorID, in.Password); err != nil {
		return nil, err
	}

	// Only title and content are mutable; author and password hash are not.
	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(post, in.AuthorID, in.Password); err != nil {
		return nil, err
	}

	if err := s.postRepo.Delete(ctx, in.PostID); err != nil {
		return nil, err
	}
	return post, nil
}

// authorize runs the two-stage ownership gate. The author check always runs
// before the password check so a mismatched author is reported as such even
// when the password is also wrong.
func (s *PostService) authorize(post *models.Post, authorID, password string) error {
	if post.AuthorID != authorID {
		return models.NewUnauthorizedError("Only the author may modify this post")
	}
	if err := s.hasher.Compare(post.Password, password); err != nil {
		return models.NewUnauthorizedError("Password does not match")
	}
	return nil
}
