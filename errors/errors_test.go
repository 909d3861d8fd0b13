package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCode_Wrapped_Error(t *testing.T) {
	req := require.New(t)

	err := fmt.Errorf("%w: index 4 >= 2", ErrInvalidAttendeeMap)

	req.ErrorIs(err, ErrInvalidAttendeeMap)
	req.Equal(CodeInvalidAttendeeMap, GetCode(err))
	req.Equal("attendeeMap", GetField(err))
	req.True(IsCode(err, CodeInvalidAttendeeMap))
}

func TestGetCode_Foreign_Error(t *testing.T) {
	req := require.New(t)

	err := stderrors.New("disk full")

	req.Equal(CodeUnknown, GetCode(err))
	req.Empty(GetField(err))
	req.Equal(CodeUnknown, GetCode(nil))
}

func TestSentinels_Are_Distinct(t *testing.T) {
	req := require.New(t)

	// Several kinds share the "room" field but keep their own code
	req.Equal(GetField(ErrAlreadyConfigured), GetField(ErrNestedBreakoutNotAllowed))
	req.NotErrorIs(ErrAlreadyConfigured, ErrNestedBreakoutNotAllowed)
	req.NotEqual(GetCode(ErrAlreadyConfigured), GetCode(ErrNestedBreakoutNotAllowed))
}
