package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return fmt.Errorf("%w: %s must be of type %s", ErrInvalidBody, jsonUnmarshalTypeError.Field, jsonUnmarshalTypeError.Type)
		}

		if errors.Is(err, types.ErrDateFormat) || errors.Is(err, types.ErrMonthFormat) {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// UUIDFromString parses a resource ID from a path parameter.
func UUIDFromString(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return u, nil
}
