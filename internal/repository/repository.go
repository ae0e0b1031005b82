package repository

import (
	"context"
)

// Ключи сохранённого состояния
const (
	OptionsKey  = "luckySpinner_options"
	ResultsKey  = "luckySpinner_results"
	DarkModeKey = "luckySpinner_darkMode"
)

// StateRepository хранилище ключ-значение для состояния колеса.
// Значения это готовый JSON, репозиторий его не разбирает.
type StateRepository interface {
	// Load возвращает nil, nil, если ключа нет
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	// SaveMany сохраняет все ключи атомарно: либо все, либо ни одного
	SaveMany(ctx context.Context, values map[string][]byte) error
	Close() error
}
