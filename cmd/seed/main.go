// Command seed fills the database with generated posts and comments.
package main

import (
	"context"
	"flag"
	"log"

	"bulletin/internal/config"
	"bulletin/internal/database"
	"bulletin/internal/seed"
)

func main() {
	posts := flag.Int("posts", 10, "number of posts to create")
	comments := flag.Int("comments", 3, "comments per post")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seed.Run(context.Background(), db, seed.Options{
		Posts:           *posts,
		CommentsPerPost: *comments,
	}); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
