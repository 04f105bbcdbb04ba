package errs

import "github.com/napalu/optable/types"

// Declaration errors
var (
	ErrEmptyTable          = New(types.KindDeclaration, ErrEmptyTableKey)
	ErrEmptyVersion        = New(types.KindDeclaration, ErrEmptyVersionKey)
	ErrInvalidIdentifier   = New(types.KindDeclaration, ErrInvalidIdentifierKey)
	ErrInvalidShortFlag    = New(types.KindDeclaration, ErrInvalidShortFlagKey)
	ErrIdentifierTooLong   = New(types.KindDeclaration, ErrIdentifierTooLongKey)
	ErrMissingIdentifier   = New(types.KindDeclaration, ErrMissingIdentifierKey)
	ErrInvalidArity        = New(types.KindDeclaration, ErrInvalidArityKey)
	ErrHintCount           = New(types.KindDeclaration, ErrHintCountKey)
	ErrUnexpectedHints     = New(types.KindDeclaration, ErrUnexpectedHintsKey)
	ErrBlankHint           = New(types.KindDeclaration, ErrBlankHintKey)
	ErrMissingDescription  = New(types.KindDeclaration, ErrMissingDescriptionKey)
	ErrDuplicateIdentifier = New(types.KindDeclaration, ErrDuplicateIdentifierKey)
	ErrInvalidTagFormat    = New(types.KindDeclaration, ErrInvalidTagFormatKey)
	ErrUnrecognizedTag     = New(types.KindDeclaration, ErrUnrecognizedTagKey)
	ErrInvalidTagValue     = New(types.KindDeclaration, ErrInvalidTagValueKey)
	ErrOnlyStructs         = New(types.KindDeclaration, ErrOnlyStructsKey)
	ErrNilPointer          = New(types.KindDeclaration, ErrNilPointerKey)
	ErrProcessingField     = New(types.KindDeclaration, ErrProcessingFieldKey)
)

// Usage errors
var (
	ErrUnknownFlag       = New(types.KindUsage, ErrUnknownFlagKey)
	ErrUnknownShortFlag  = New(types.KindUsage, ErrUnknownShortFlagKey)
	ErrInvalidArgument   = New(types.KindUsage, ErrInvalidArgumentKey)
	ErrAlreadySetup      = New(types.KindUsage, ErrAlreadySetupKey)
	ErrNotSetup          = New(types.KindUsage, ErrNotSetupKey)
	ErrAlreadyClassified = New(types.KindUsage, ErrAlreadyClassifiedKey)
	ErrNotClassified     = New(types.KindUsage, ErrNotClassifiedKey)
	ErrTornDown          = New(types.KindUsage, ErrTornDownKey)
	ErrMissingValues     = New(types.KindUsage, ErrMissingValuesKey)
	ErrInvalidValue      = New(types.KindUsage, ErrInvalidValueKey)
	ErrForeignResult     = New(types.KindUsage, ErrForeignResultKey)
	ErrWidthTooSmall     = New(types.KindUsage, ErrWidthTooSmallKey)
)

// Lookup misses
var (
	ErrOptionNotFound = New(types.KindLookup, ErrOptionNotFoundKey)
)
