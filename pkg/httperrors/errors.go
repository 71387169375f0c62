// Package httperrors maps errors to HTTP responses.
package httperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/httputil"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/envelope-zero/planner/pkg/store"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// badRequest are errors caused by invalid input. Their message is shown to the user.
var badRequest = []error{
	types.ErrMonthFormat,
	types.ErrDateFormat,
	models.ErrMissingUserID,
	models.ErrMissingCategory,
	models.ErrInvalidBucket,
	models.ErrInvalidDebtStrategy,
	money.ErrInvalidCurrency,
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	httputil.ErrInvalidUUID,
}

// notFound are errors for resources that do not exist.
var notFound = []error{
	models.ErrPlanNotFound,
	models.ErrTransactionNotFound,
}

// New writes an error response with the message formatted from msgAndArgs.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Error: msg,
	})
}

// Parse returns the HTTP status for an error and the error to show to the user.
//
// Errors that are not caused by the request are logged with the request ID
// and replaced by a generic message.
func Parse(c *gin.Context, err error) Error {
	for _, e := range badRequest {
		if errors.Is(err, e) {
			return Error{Status: http.StatusBadRequest, Err: err}
		}
	}

	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		return Error{Status: http.StatusBadRequest, Err: httputil.ErrInvalidBody}
	}

	for _, e := range notFound {
		if errors.Is(err, e) {
			return Error{Status: http.StatusNotFound, Err: err}
		}
	}

	if errors.Is(err, store.ErrDatabase) {
		return Error{Status: http.StatusInternalServerError, Err: store.ErrDatabase}
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return Error{
		Status: http.StatusInternalServerError,
		Err:    fmt.Errorf("An error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)),
	}
}

// Handler writes the error response for err.
func Handler(c *gin.Context, err error) {
	e := Parse(c, err)
	New(c, e.Status, e.Error())
}
