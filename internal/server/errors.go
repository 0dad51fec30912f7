package server

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/cardsmith/internal/flashcard"
	"github.com/at-ishikawa/cardsmith/internal/generation"
	"github.com/at-ishikawa/cardsmith/internal/session"
)

// toConnectError maps session, generation and edit errors to connect codes.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}

	var inputErr *session.InputError
	var validationErr *flashcard.ValidationError
	var collaboratorErr *generation.CollaboratorError
	switch {
	case errors.As(err, &inputErr):
		return invalidArgument(err, &errdetails.BadRequest_FieldViolation{
			Field:       inputErr.Field,
			Description: inputErr.Message,
		})
	case errors.As(err, &validationErr):
		return invalidArgument(err, &errdetails.BadRequest_FieldViolation{
			Field:       validationErr.Field,
			Description: validationErr.Message,
		})
	case errors.Is(err, generation.ErrBusy):
		return connect.NewError(connect.CodeAborted, err)
	case errors.As(err, &collaboratorErr):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, generation.ErrNoValidFlashcards),
		errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, session.ErrNothingToExport):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, session.ErrCardNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
