package grpcsvc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// ErrorDomain - домен в google.rpc.ErrorInfo отказов сервиса.
const ErrorDomain = "checkout.v1"

// statusCode сопоставляет доменную ошибку коду gRPC.
func statusCode(err error) codes.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case domain.IsVersionConflict(err):
		return codes.Aborted
	case errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCouponNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, domain.ErrValidation):
		return codes.InvalidArgument
	case domain.IsGuardFailure(err):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// toStatus превращает ошибку сервиса в gRPC-статус с ErrorInfo, reason
// которого - машинный код отказа. Текст внутренних ошибок наружу не отдаётся.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := statusCode(err)
	message := err.Error()
	if code == codes.Internal {
		message = "internal error"
	}

	st := status.New(code, message)
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: domain.ReasonCode(err),
		Domain: ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ReasonFromError достаёт машинный код отказа из gRPC-ошибки.
func ReasonFromError(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return ""
}
