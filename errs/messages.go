package errs

// defaultMessages maps message keys to their format strings
var defaultMessages = map[string]string{
	ErrEmptyTableKey:          "option table must not be empty",
	ErrEmptyVersionKey:        "version must not be empty",
	ErrInvalidIdentifierKey:   "option[%d].%s %q must contain only letters and digits",
	ErrInvalidShortFlagKey:    "option[%d].short %q must be a single letter or digit",
	ErrIdentifierTooLongKey:   "option[%d].%s must not be longer than %d characters",
	ErrMissingIdentifierKey:   "option[%d] must have at least one identifier",
	ErrInvalidArityKey:        "option[%d].arity should use %d for variable length or a value between 0 and %d (not %d)",
	ErrHintCountKey:           "option[%d] expected %d hint(s) but received %d",
	ErrUnexpectedHintsKey:     "option[%d] takes no value but declares %d hint(s)",
	ErrBlankHintKey:           "option[%d].hints[%d] should contain valid help text",
	ErrMissingDescriptionKey:  "option[%d].description should contain valid text",
	ErrDuplicateIdentifierKey: "option[%d].%s %q is already declared by option[%d]",

	ErrUnknownFlagKey:       "unknown flag '%s'",
	ErrUnknownShortFlagKey:  "unknown flag '%c' in '%s'",
	ErrInvalidArgumentKey:   "invalid argument '%s'",
	ErrAlreadySetupKey:      "option table has already been set up",
	ErrNotSetupKey:          "option table must be set up first",
	ErrAlreadyClassifiedKey: "arguments have already been classified",
	ErrNotClassifiedKey:     "arguments have not been classified",
	ErrTornDownKey:          "engine has been torn down",
	ErrMissingValuesKey:     "option '%s' expects %d value(s) but received %d",
	ErrInvalidValueKey:      "invalid value '%s' for option '%s'",
	ErrForeignResultKey:     "option index %d is not part of this registry",

	ErrOptionNotFoundKey: "option '%s' not found",

	ErrWidthTooSmallKey: "width %d must be greater than the decoration length %d",

	ErrInvalidTagFormatKey: "invalid tag format in field %s: %s",
	ErrUnrecognizedTagKey:  "unrecognized key '%s' in field %s",
	ErrInvalidTagValueKey:  "invalid '%s' value in field %s",
	ErrOnlyStructsKey:      "only structs can be tagged",
	ErrNilPointerKey:       "nil pointer",
	ErrProcessingFieldKey:  "error processing field %s",
}

// Message returns the format string for key, or the key itself when it is unknown
func Message(key string) string {
	if msg, ok := defaultMessages[key]; ok {
		return msg
	}

	return key
}
