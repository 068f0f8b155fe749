package service

import (
	"context"
	"errors"
	"testing"

	"bulletin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uint) (*models.Post, error)
	listFn    func(context.Context) ([]*models.Post, error)
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:    func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		updateFn:  func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.PostComment) error
	getByIDFn    func(context.Context, uint) (*models.PostComment, error)
	listByPostFn func(context.Context, uint) ([]*models.PostComment, error)
	updateFn     func(context.Context, *models.PostComment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.PostComment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.PostComment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.PostComment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.PostComment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.PostComment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.PostComment, error) { return &models.PostComment{}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]*models.PostComment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.PostComment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

var errHashMismatch = errors.New("hash mismatch")

// hasherStub hashes by prefixing, so tests can assert hashing happened
// without paying for bcrypt.
type hasherStub struct {
	compareCalls int
}

func (h *hasherStub) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (h *hasherStub) Compare(hashed, plain string) error {
	h.compareCalls++
	if hashed == "hashed:"+plain {
		return nil
	}
	return errHashMismatch
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeNotFound)
}
