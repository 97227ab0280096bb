package models

// ValidationError reports invalid draft input caught before any network
// call. It always names the offending input so the user can fix it in one
// pass.
type ValidationError struct {
	Message string

	// OversizedNames lists every file that failed the size cap when the
	// error came from batch validation.
	OversizedNames []string
}

func (e *ValidationError) Error() string { return e.Message }
