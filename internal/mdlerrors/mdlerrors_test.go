package mdlerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExceptionError(t *testing.T) {
	e := NewException("invalidrecord", "Can't find data record in database table external_functions.")
	assert.Equal(t, "moodle_exception (invalidrecord): Can't find data record in database table external_functions.", e.Error())

	e = &Exception{ErrorCode: "invalidlogin", Message: "Invalid login"}
	assert.Equal(t, "invalidlogin: Invalid login", e.Error())
}

func TestExceptionIsInvalidToken(t *testing.T) {
	err := fmt.Errorf("fetching courses: %w", NewException("invalidtoken", "Invalid token"))
	assert.True(t, errors.Is(err, InvalidTokenError))

	var e *Exception
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "invalidtoken", e.ErrorCode)

	assert.False(t, errors.Is(NewException("invalidrecord", "x"), InvalidTokenError))
}
