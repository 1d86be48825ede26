package errs

// Category markers. Usecase sentinels are marked with one of these so the
// handler layer can pick an HTTP status without knowing every sentinel.
var (
	ErrValidation   = New("validation failed")
	ErrNotFound     = New("not found")
	ErrConflict     = New("conflict")
	ErrForbidden    = New("forbidden")
	ErrUnauthorized = New("unauthorized")
)

// Validation marks err as a validation failure.
func Validation(err error) error { return Mark(err, ErrValidation) }

func NotFound(err error) error { return Mark(err, ErrNotFound) }

func Conflict(err error) error { return Mark(err, ErrConflict) }

func Forbidden(err error) error { return Mark(err, ErrForbidden) }

// Unauthorized marks err as a failed or missing authentication.
func Unauthorized(err error) error { return Mark(err, ErrUnauthorized) }
