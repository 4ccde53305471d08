package party

import "errors"

// Sentinel errors returned by the linker, the submission engine and the
// invite code generator. Callers are expected to match on them and render a
// user-facing message; anything else is a store failure and must be treated
// as opaque.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidInviteCode  = errors.New("invalid invite code")
	ErrAlreadyLinked      = errors.New("guest already linked to another identity")
	ErrPrimaryNotFound    = errors.New("no primary guest for invite code")
	ErrMissingInviteCode  = errors.New("missing invite code")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique invite code")
)
