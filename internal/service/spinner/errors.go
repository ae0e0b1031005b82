package spinner

import "errors"

var (
	ErrEmptySelectionPool = errors.New("no options available to spin")
	ErrSpinInProgress     = errors.New("spin already in progress")
	ErrOptionNotFound     = errors.New("option not found")
	ErrNotConfirmed       = errors.New("action requires confirmation")
	ErrImportParse        = errors.New("invalid file format")
	// ErrPersistenceRead битые данные в хранилище; наружу не отдаётся,
	// при загрузке подставляются значения по умолчанию
	ErrPersistenceRead = errors.New("malformed persisted state")
)
