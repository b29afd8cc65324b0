package langstore

import "errors"

var (
	ErrEmptyLocale         = errors.New("langstore: locale cannot be empty")
	ErrDefaultNotSupported = errors.New("langstore: default locale must be in the supported set")
	ErrEmptyStorageKey     = errors.New("langstore: storage key cannot be empty")
	ErrInvalidFile         = errors.New("langstore: invalid translation file")
)
