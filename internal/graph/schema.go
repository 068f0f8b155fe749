package graph

import "github.com/graphql-go/graphql"

// NewSchema builds the executable schema. Password hash fields are not
// declared on any object type, so they are unreachable by construction.
//
// Operation naming follows the original API surface, mixed casing included:
// snake_case for post_comments/create_post and the comment mutations,
// camelCase for updatePost/deletePost.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"content":   &graphql.Field{Type: graphql.String},
			"authorId":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PostComment",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"content":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"authorId":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"postId":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"post":      &graphql.Field{Type: graphql.NewNonNull(postType)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	createPostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updatePostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	deletePostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "DeletePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreatePostCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"postId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	updateCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdatePostCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	deleteCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "DeletePostCommentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"posts": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
				Resolve: r.resolvePosts,
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolvePost,
			},
			"post_comments": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolvePostComments,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"create_post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPostInput)},
				},
				Resolve: r.resolveCreatePost,
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updatePostInput)},
				},
				Resolve: r.resolveUpdatePost,
			},
			"deletePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(deletePostInput)},
				},
				Resolve: r.resolveDeletePost,
			},
			"create_post_comment": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCommentInput)},
				},
				Resolve: r.resolveCreateComment,
			},
			"update_post_comment": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateCommentInput)},
				},
				Resolve: r.resolveUpdateComment,
			},
			"delete_post_comment": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(deleteCommentInput)},
				},
				Resolve: r.resolveDeleteComment,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
