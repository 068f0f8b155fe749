package graph

import (
	"errors"

	"bulletin/internal/models"
)

// resolverError adapts an AppError to graphql-go's ExtendedError so the
// machine-readable code travels in the error extensions.
type resolverError struct {
	app *models.AppError
}

func (e *resolverError) Error() string {
	return e.app.Message
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.app.Code,
	}
}

func (e *resolverError) Unwrap() error {
	return e.app
}

// wrapError translates a service error into the wire-format error object.
// Unknown errors (storage connectivity and the like) become INTERNAL_ERROR
// without losing the original cause.
func wrapError(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return &resolverError{app: appErr}
	}
	return &resolverError{app: models.NewInternalError(err)}
}
