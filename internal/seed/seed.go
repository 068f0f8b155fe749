// Package seed populates the database with generated development data.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bulletin/internal/middleware"
	"bulletin/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the plaintext secret every seeded entity accepts, so
// seeded posts and comments can be mutated during manual testing.
const SeedPassword = "password123"

// Options controls how much data Run generates.
type Options struct {
	Posts           int
	CommentsPerPost int
}

// Run generates posts and attached comments. Author identifiers are opaque
// strings, matching what real clients send.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	if opts.Posts <= 0 {
		return nil
	}

	// One shared hash: bcrypt per row is pointlessly slow for fixtures.
	hashed, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for i := 0; i < opts.Posts; i++ {
		post := &models.Post{
			Title:    strings.TrimSuffix(gofakeit.Sentence(6), "."),
			Content:  gofakeit.Paragraph(1, 3, 12, " "),
			AuthorID: fakeAuthorID(),
			Password: string(hashed),
		}
		if err := db.WithContext(ctx).Create(post).Error; err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}

		for j := 0; j < opts.CommentsPerPost; j++ {
			comment := &models.PostComment{
				Content:  gofakeit.Sentence(10),
				AuthorID: fakeAuthorID(),
				Password: string(hashed),
				PostID:   post.ID,
			}
			if err := db.WithContext(ctx).Create(comment).Error; err != nil {
				return fmt.Errorf("failed to seed comment on post %d: %w", post.ID, err)
			}
		}
	}

	middleware.Logger.InfoContext(ctx, "seed complete",
		slog.Int("posts", opts.Posts),
		slog.Int("comments", opts.Posts*opts.CommentsPerPost),
	)
	return nil
}

func fakeAuthorID() string {
	return fmt.Sprintf("%s-%s", gofakeit.Username(), uuid.NewString()[:8])
}
