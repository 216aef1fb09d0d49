package model

import "github.com/m-mizutani/goerr/v2"

// ErrTagConfiguration marks fatal configuration errors that abort a run
// before any network call is made
var ErrTagConfiguration = goerr.NewTag("configuration")

// Sentinel errors for domain operations
var (
	ErrNoSpaces         = goerr.New("at least one space name must be provided", goerr.T(ErrTagConfiguration))
	ErrEmptySpaceName   = goerr.New("space name cannot be empty after sanitization", goerr.T(ErrTagConfiguration))
	ErrInvalidRecipient = goerr.New("recipient must be a numeric user ID or in the format username#1234", goerr.T(ErrTagConfiguration))
)
