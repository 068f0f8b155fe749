package server

import (
	"bulletin/internal/middleware"
	"bulletin/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQL executes a GraphQL request. The envelope is always HTTP 200 for
// well-formed requests; operation-level failures travel in the errors list
// with a null data field, per the GraphQL over-HTTP convention.
func (s *Server) GraphQL(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []fiber.Map{{"message": "invalid request body"}},
		})
	}

	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.UserContext(),
	})

	operation := req.OperationName
	if operation == "" {
		operation = "anonymous"
	}
	if len(result.Errors) > 0 {
		observability.GraphQLOperations.WithLabelValues(operation, "error").Inc()
		for _, gqlErr := range result.Errors {
			middleware.Logger.WarnContext(c.UserContext(), "graphql operation failed",
				"operation", operation,
				"error", gqlErr.Message,
			)
		}
	} else {
		observability.GraphQLOperations.WithLabelValues(operation, "ok").Inc()
	}

	return c.JSON(result)
}
