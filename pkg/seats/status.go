package seats

import (
	"fmt"
	"strings"

	"connectrpc.com/connect"
)

// CodeOf returns the status code of err. Errors that did not come from the
// remote service or from Errorf report connect.CodeUnknown.
func CodeOf(err error) connect.Code {
	return connect.CodeOf(err)
}

// StatusName returns the gRPC status name of err: OK for nil, otherwise the
// upper-case code name such as OUT_OF_RANGE.
func StatusName(err error) string {
	if err == nil {
		return "OK"
	}
	return strings.ToUpper(connect.CodeOf(err).String())
}

// Errorf returns an error carrying code, for use by Handler implementations.
func Errorf(code connect.Code, format string, args ...any) error {
	return connect.NewError(code, fmt.Errorf(format, args...))
}
