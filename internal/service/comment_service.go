package service

import (
	"context"

	"bulletin/internal/models"
	"bulletin/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	hasher      PasswordHasher
}

type CreateCommentInput struct {
	Content  string
	AuthorID string
	Password string
	PostID   uint
}

type UpdateCommentInput struct {
	CommentID uint
	Content   string
	AuthorID  string
	Password  string
}

type DeleteCommentInput struct {
	CommentID uint
	AuthorID  string
	Password  string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	hasher PasswordHasher,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		hasher:      hasher,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.PostComment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if in.AuthorID == "" {
		return nil, models.NewValidationError("Author ID is required")
	}
	if in.Password == "" {
		return nil, models.NewValidationError("Password is required")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	comment := &models.PostComment{
		Content:  in.Content,
		AuthorID: in.AuthorID,
		Password: hashed,
		PostID:   in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	comment.Post = post
	return comment, nil
}

// ListByPost returns every comment on the given post, each carrying the full
// parent post. A missing post is an error, not an empty list.
func (s *CommentService) ListByPost(ctx context.Context, postID uint) ([]*models.PostComment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		comment.Post = post
	}
	return comments, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.PostComment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(comment, in.AuthorID, in.Password); err != nil {
		return nil, err
	}

	if in.Content != "" {
		comment.Content = in.Content
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.withParent(ctx, comment)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (*models.PostComment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(comment, in.AuthorID, in.Password); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return s.withParent(ctx, comment)
}

// authorize runs the same two-stage gate as posts: author match first, then
// password verification.
func (s *CommentService) authorize(comment *models.PostComment, authorID, password string) error {
	if comment.AuthorID != authorID {
		return models.NewUnauthorizedError("Only the author may modify this comment")
	}
	if err := s.hasher.Compare(comment.Password, password); err != nil {
		return models.NewUnauthorizedError("Password does not match")
	}
	return nil
}

func (s *CommentService) withParent(ctx context.Context, comment *models.PostComment) (*models.PostComment, error) {
	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return nil, err
	}
	comment.Post = post
	return comment, nil
}
