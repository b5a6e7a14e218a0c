// Package api maps service errors to gRPC statuses and back.
package api

import (
	"errors"

	"github.com/dmitrijs2005/blogauth/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain qualifies the ErrorInfo detail attached to failed calls.
const ErrorDomain = "blogauth"

// StatusFromError converts a service error into a gRPC status carrying the
// user-facing message and an ErrorInfo whose Reason is the error kind.
func StatusFromError(err error) *status.Status {
	kind := common.ErrorKind(err)

	code := codes.Internal
	switch {
	case errors.Is(err, common.ErrorValidation):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrEmailExists):
		code = codes.AlreadyExists
	case errors.Is(err, common.ErrEmailNotFound), errors.Is(err, common.ErrIncorrectPassword):
		code = codes.Unauthenticated
	}

	st := status.New(code, common.UserMessage(err))
	withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: kind, Domain: ErrorDomain})
	if derr != nil {
		return st
	}
	return withInfo
}

// ErrorKind extracts the error kind from an error returned by a client call.
// Errors without an ErrorInfo detail are reported as common.KindInternal.
func ErrorKind(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return common.KindInternal
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return common.KindInternal
}
