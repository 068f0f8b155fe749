// Package graph assembles the GraphQL schema over the entity services and
// maps service errors onto the wire-format error envelope.
package graph

import (
	"github.com/graphql-go/graphql"

	"bulletin/internal/service"
)

// Resolver holds the services the schema delegates to.
type Resolver struct {
	posts    *service.PostService
	comments *service.CommentService
}

func NewResolver(posts *service.PostService, comments *service.CommentService) *Resolver {
	return &Resolver{
		posts:    posts,
		comments: comments,
	}
}

func (r *Resolver) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	posts, err := r.posts.ListPosts(p.Context)
	if err != nil {
		return nil, wrapError(err)
	}
	return posts, nil
}

func (r *Resolver) resolvePost(p graphql.ResolveParams) (interface{}, error) {
	post, err := r.posts.GetPost(p.Context, idArg(p, "id"))
	if err != nil {
		return nil, wrapError(err)
	}
	return post, nil
}

func (r *Resolver) resolvePostComments(p graphql.ResolveParams) (interface{}, error) {
	comments, err := r.comments.ListByPost(p.Context, idArg(p, "postId"))
	if err != nil {
		return nil, wrapError(err)
	}
	return comments, nil
}

func (r *Resolver) resolveCreatePost(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	post, err := r.posts.CreatePost(p.Context, service.CreatePostInput{
		Title:    stringField(input, "title"),
		Content:  stringField(input, "content"),
		AuthorID: stringField(input, "authorId"),
		Password: stringField(input, "password"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return post, nil
}

func (r *Resolver) resolveUpdatePost(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	post, err := r.posts.UpdatePost(p.Context, service.UpdatePostInput{
		PostID:   idArg(p, "id"),
		Title:    stringField(input, "title"),
		Content:  stringField(input, "content"),
		AuthorID: stringField(input, "authorId"),
		Password: stringField(input, "password"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return post, nil
}

func (r *Resolver) resolveDeletePost(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	post, err := r.posts.DeletePost(p.Context, service.DeletePostInput{
		PostID:   idArg(p, "id"),
		AuthorID: stringField(input, "authorId"),
		Password: stringField(input, "password"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return post, nil
}

func (r *Resolver) resolveCreateComment(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	comment, err := r.comments.CreateComment(p.Context, service.CreateCommentInput{
		Content:  stringField(input, "content"),
		AuthorID: stringField(input, "authorId"),
		Password: stringField(input, "password"),
		PostID:   intField(input, "postId"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return comment, nil
}

func (r *Resolver) resolveUpdateComment(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	comment, err := r.comments.UpdateComment(p.Context, service.UpdateCommentInput{
		CommentID: idArg(p, "id"),
		Content:   stringField(input, "content"),
		AuthorID:  stringField(input, "authorId"),
		Password:  stringField(input, "password"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return comment, nil
}

func (r *Resolver) resolveDeleteComment(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	comment, err := r.comments.DeleteComment(p.Context, service.DeleteCommentInput{
		CommentID: idArg(p, "id"),
		AuthorID:  stringField(input, "authorId"),
		Password:  stringField(input, "password"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return comment, nil
}

// idArg reads a non-null Int argument. The schema guarantees presence and
// type, so missing values only occur on programmer error and read as zero.
func idArg(p graphql.ResolveParams, name string) uint {
	if v, ok := p.Args[name].(int); ok {
		return uint(v)
	}
	return 0
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	if m, ok := p.Args["input"].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func stringField(input map[string]interface{}, key string) string {
	if v, ok := input[key].(string); ok {
		return v
	}
	return ""
}

func intField(input map[string]interface{}, key string) uint {
	if v, ok := input[key].(int); ok {
		return uint(v)
	}
	return 0
}
