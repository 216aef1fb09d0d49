package chatapi

import "github.com/m-mizutani/goerr/v2"

// Error tags for API error classification
var (
	ErrTagRateLimited  = goerr.NewTag("rate_limited")
	ErrTagUnauthorized = goerr.NewTag("unauthorized")
	ErrTagNotFound     = goerr.NewTag("not_found")
	ErrTagServerError  = goerr.NewTag("server_error")
	ErrTagNetworkError = goerr.NewTag("network_error")
	ErrTagUnknown      = goerr.NewTag("unknown")

	// ErrTagAmbiguous marks a create call that timed out without a
	// definitive response. The side effect may have occurred remotely, so
	// the call is not re-issued; results carrying this tag need manual
	// deduplication review.
	ErrTagAmbiguous = goerr.NewTag("ambiguous_side_effect")
)

// IsAmbiguous reports whether an error marks an ambiguous create timeout
func IsAmbiguous(err error) bool {
	return goerr.HasTag(err, ErrTagAmbiguous)
}
