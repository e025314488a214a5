package suirpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// Error is a failed remote call, carrying the server error code when the
// endpoint returned one and zero for transport-level failures.
type Error struct {
	Method  string
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("rpc %s: %s (code %d)", e.Method, e.Message, e.Code)
	}
	return fmt.Sprintf("rpc %s: %s", e.Method, e.Message)
}

// normalizeError converts transport errors into *Error. Context errors pass
// through untouched so callers can still detect cancellation.
func normalizeError(method string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return &Error{Method: method, Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
	}
	return &Error{Method: method, Message: err.Error()}
}
