// Package http contains the echo handlers that expose the application
// services as a JSON API. Handlers bind and validate the request, call one
// service method and translate sentinel errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// parseID reads a numeric path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, ports.MessageResponse{Message: "Invalid " + name})
	}
	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
// Validation failures come back as a 400 with the offending field names.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ports.MessageResponse{Message: "Invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return echo.NewHTTPError(http.StatusBadRequest, ports.ErrorResponse{
				Message: "validation failed",
				Fields:  fields,
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

// serviceError maps domain sentinels onto HTTP errors. Unknown errors pass
// through to the global error handler as a 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrTeamMemberNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrCommentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, ports.MessageResponse{Message: err.Error()})
	case errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidPriority):
		return echo.NewHTTPError(http.StatusBadRequest, ports.MessageResponse{Message: err.Error()})
	}
	return err
}
