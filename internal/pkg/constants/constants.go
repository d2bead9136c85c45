package constants

import "net/http"

const (
	CookieKeyAuthToken = "flux_auth_token"

	CtxKeyUser = "current_user"
)

// Viper configuration keys.
const (
	ViperListenAddr      = "listen_addr"
	ViperSheetURL        = "sheet_url"
	ViperRefreshInterval = "refresh_interval"
	ViperDatabaseDSN     = "database_dsn"
	ViperJWTSecret       = "jwt_secret"
	ViperCORSOrigin      = "cors_origin"
)

// CodedError is an error carrying the HTTP status it should be reported
// with. The api error handler unwraps down to the first CodedError it
// finds.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string { return e.msg }
func (e *CodedError) Code() int     { return e.code }

var (
	ErrDBNotFound       = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized     = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrForbidden        = NewCodedError("forbidden", http.StatusForbidden)
	ErrBadCredentials   = NewCodedError("unknown login or wrong password", http.StatusUnauthorized)
	ErrLoginTaken       = NewCodedError("login already taken", http.StatusConflict)
	ErrSheetUnavailable = NewCodedError("record source unavailable", http.StatusBadGateway)
)
