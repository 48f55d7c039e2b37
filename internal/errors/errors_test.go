package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "prototype not found",
			expected: "NOT_FOUND: prototype not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "bucket overlaps",
			expected: "INVALID_ARGUMENT: bucket overlaps",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("prototype not found").
		WithMeta("prototype", "Wight").
		WithMeta("table", "undead")

	s.Equal("Wight", err.Meta["prototype"])
	s.Equal("undead", err.Meta["table"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load catalog")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load catalog", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("prototype not found").WithMeta("prototype", "Ghoul")
	wrapped := errors.Wrapf(baseErr, "failed to build %s", "Ghoul")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to build Ghoul", wrapped.Message)
	s.Equal("Ghoul", wrapped.Meta["prototype"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("dial tcp: timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "catalog store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.True(errors.IsUnavailable(wrapped))
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.Internal("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	wrapped := errors.Wrap(errors.Internalf("depth %d exceeded", 2), "resolve failed")

	s.Equal(errors.CodeInternal, errors.GetCode(wrapped))
	s.True(errors.IsInternal(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	wrapped := errors.Wrap(errors.NotFound("inner"), "outer")

	s.Equal("outer", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Equal("", errors.GetMessage(nil))
	s.Nil(errors.GetMeta(fmt.Errorf("standard error")))
}
