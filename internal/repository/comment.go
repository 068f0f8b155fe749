package repository

import (
	"context"
	"errors"

	"bulletin/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for post comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.PostComment) error
	GetByID(ctx context.Context, id uint) (*models.PostComment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.PostComment, error)
	Update(ctx context.Context, comment *models.PostComment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.PostComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.PostComment, error) {
	var comment models.PostComment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.PostComment, error) {
	var comments []*models.PostComment
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at asc").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Update(ctx context.Context, comment *models.PostComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PostComment{}, id).Error
}
