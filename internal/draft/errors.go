package draft

import "errors"

var (
	ErrSessionNotFound = errors.New("draft session not found")
	ErrStepInvalid     = errors.New("step has unmet constraints")
	ErrAtFirstStep     = errors.New("already at the first step")
	ErrNotConfirmStep  = errors.New("submit is only available at the confirmation step")
	ErrTermsNotAccept  = errors.New("terms must be accepted before submitting")
	ErrStyleLimit      = errors.New("style limit reached")
	ErrUnknownStyle    = errors.New("unknown musical style")
	ErrBadVoiceSlot    = errors.New("invalid voice slot")
	ErrSubmitInFlight  = errors.New("a submission is already in progress for this session")
)
