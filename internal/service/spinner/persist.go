package spinner

import (
	"context"
	"fmt"
	"lucky_spinner/internal/metrics"
	"lucky_spinner/internal/model"
	"lucky_spinner/internal/repository"
	"time"

	"go.uber.org/zap"
)

// таймаут записи из колбэка анимации, где нет контекста запроса
const settleSaveTimeout = 5 * time.Second

// Load читает опции, историю и тему. Битый JSON не роняет запуск:
// пишем предупреждение и берём значение по умолчанию.
func (s *serv) Load(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	options := []model.Option{}
	if err := s.loadKey(ctx, repository.OptionsKey, &options); err != nil {
		return err
	}
	results := []model.Result{}
	if err := s.loadKey(ctx, repository.ResultsKey, &results); err != nil {
		return err
	}
	darkMode := false
	if err := s.loadKey(ctx, repository.DarkModeKey, &darkMode); err != nil {
		return err
	}

	// "null" в хранилище раскодируется в nil
	if options == nil {
		options = []model.Option{}
	}
	if results == nil {
		results = []model.Result{}
	}

	s.options = options
	s.results = results
	s.darkMode = darkMode
	s.updateGauges()

	s.logger.Info("state loaded",
		zap.Int("options", len(options)),
		zap.Int("results", len(results)),
		zap.Bool("dark_mode", darkMode),
	)
	return nil
}

// loadKey ошибка хранилища возвращается, ошибка разбора только логируется,
// а dst остаётся со значением по умолчанию
func (s *serv) loadKey(ctx context.Context, key string, dst any) error {
	raw, err := s.repo.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("failed to load state, using defaults",
			zap.String("key", key),
			zap.Error(fmt.Errorf("%w: %v", ErrPersistenceRead, err)),
		)
		resetToDefault(dst)
	}
	return nil
}

func resetToDefault(dst any) {
	switch v := dst.(type) {
	case *[]model.Option:
		*v = []model.Option{}
	case *[]model.Result:
		*v = []model.Result{}
	case *bool:
		*v = false
	}
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// saveOptions пишет опции в хранилище и только после успеха меняет состояние.
// Вызывается под s.mtx.
func (s *serv) saveOptions(ctx context.Context, options []model.Option) error {
	data, err := encode(options)
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, repository.OptionsKey, data); err != nil {
		metrics.PersistFailures.Inc()
		return fmt.Errorf("save options: %w", err)
	}
	s.options = options
	s.updateGauges()
	return nil
}

func (s *serv) saveResults(ctx context.Context, results []model.Result) error {
	data, err := encode(results)
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, repository.ResultsKey, data); err != nil {
		metrics.PersistFailures.Inc()
		return fmt.Errorf("save results: %w", err)
	}
	s.results = results
	return nil
}

// saveBoth опции и история одной записью (итог спина, импорт)
func (s *serv) saveBoth(ctx context.Context, options []model.Option, results []model.Result) error {
	optData, err := encode(options)
	if err != nil {
		return err
	}
	resData, err := encode(results)
	if err != nil {
		return err
	}
	err = s.repo.SaveMany(ctx, map[string][]byte{
		repository.OptionsKey: optData,
		repository.ResultsKey: resData,
	})
	if err != nil {
		metrics.PersistFailures.Inc()
		return fmt.Errorf("save state: %w", err)
	}
	s.options = options
	s.results = results
	s.updateGauges()
	return nil
}

func (s *serv) updateGauges() {
	active := 0
	for _, opt := range s.options {
		if opt.Active {
			active++
		}
	}
	metrics.SetOptionCounts(len(s.options), active)
}
