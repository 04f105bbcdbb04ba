package errs

// PrefixKey prefixes all optable message keys
const PrefixKey = "optable"

const (
	ErrorPrefixKey       = PrefixKey + ".error"
	DeclarationPrefixKey = ErrorPrefixKey + ".declaration"
	UsagePrefixKey       = ErrorPrefixKey + ".usage"
	LookupPrefixKey      = ErrorPrefixKey + ".lookup"
	LayoutPrefixKey      = ErrorPrefixKey + ".layout"
	TagPrefixKey         = ErrorPrefixKey + ".tag"
)

// Declaration errors - detected while validating an option table
const (
	ErrEmptyTableKey          = DeclarationPrefixKey + ".empty_table"
	ErrEmptyVersionKey        = DeclarationPrefixKey + ".empty_version"
	ErrInvalidIdentifierKey   = DeclarationPrefixKey + ".invalid_identifier"
	ErrInvalidShortFlagKey    = DeclarationPrefixKey + ".invalid_short_flag"
	ErrIdentifierTooLongKey   = DeclarationPrefixKey + ".identifier_too_long"
	ErrMissingIdentifierKey   = DeclarationPrefixKey + ".missing_identifier"
	ErrInvalidArityKey        = DeclarationPrefixKey + ".invalid_arity"
	ErrHintCountKey           = DeclarationPrefixKey + ".hint_count"
	ErrUnexpectedHintsKey     = DeclarationPrefixKey + ".unexpected_hints"
	ErrBlankHintKey           = DeclarationPrefixKey + ".blank_hint"
	ErrMissingDescriptionKey  = DeclarationPrefixKey + ".missing_description"
	ErrDuplicateIdentifierKey = DeclarationPrefixKey + ".duplicate_identifier"
)

// Usage errors - detected while classifying arguments or on lifecycle misuse
const (
	ErrUnknownFlagKey       = UsagePrefixKey + ".unknown_flag"
	ErrUnknownShortFlagKey  = UsagePrefixKey + ".unknown_short_flag"
	ErrInvalidArgumentKey   = UsagePrefixKey + ".invalid_argument"
	ErrAlreadySetupKey      = UsagePrefixKey + ".already_setup"
	ErrNotSetupKey          = UsagePrefixKey + ".not_setup"
	ErrAlreadyClassifiedKey = UsagePrefixKey + ".already_classified"
	ErrNotClassifiedKey     = UsagePrefixKey + ".not_classified"
	ErrTornDownKey          = UsagePrefixKey + ".torn_down"
	ErrMissingValuesKey     = UsagePrefixKey + ".missing_values"
	ErrInvalidValueKey      = UsagePrefixKey + ".invalid_value"
	ErrForeignResultKey     = UsagePrefixKey + ".foreign_result"
)

// Lookup misses
const (
	ErrOptionNotFoundKey = LookupPrefixKey + ".option_not_found"
)

// Layout errors
const (
	ErrWidthTooSmallKey = LayoutPrefixKey + ".width_too_small"
)

// Struct tag errors
const (
	ErrInvalidTagFormatKey = TagPrefixKey + ".invalid_format"
	ErrUnrecognizedTagKey  = TagPrefixKey + ".unrecognized_key"
	ErrInvalidTagValueKey  = TagPrefixKey + ".invalid_value"
	ErrOnlyStructsKey      = TagPrefixKey + ".only_structs"
	ErrNilPointerKey       = TagPrefixKey + ".nil_pointer"
	ErrProcessingFieldKey  = TagPrefixKey + ".processing_field"
)
