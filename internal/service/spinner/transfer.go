package spinner

import (
	"context"
	"fmt"
	"io"
	"lucky_spinner/internal/metrics"
	"lucky_spinner/internal/model"
	"strings"

	"go.uber.org/zap"
)

// ExportFileName имя файла выгрузки по умолчанию
const ExportFileName = "lucky-spinner-data.json"

// Export пишет {options, results} с отступом в два пробела
func (s *serv) Export(ctx context.Context, w io.Writer) error {
	s.mtx.Lock()
	snapshot := model.Snapshot{
		Options: model.CloneOptions(s.options),
		Results: model.CloneResults(s.results),
	}
	s.mtx.Unlock()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Import заменяет опции и/или историю целиком, если ключ есть в файле.
// Неизвестные ключи игнорируются; при ошибке разбора состояние не меняется.
func (s *serv) Import(ctx context.Context, r io.Reader) (*model.Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}

	var doc model.ImportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		metrics.Import(false)
		s.logger.Warn("import rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.wheel.Spinning {
		return nil, ErrSpinInProgress
	}

	options := s.options
	if doc.Options != nil {
		options = model.CloneOptions(*doc.Options)
		// id должен быть уникальным: иначе правка, удаление и итог спина попадут в первую из копий
		seen := make(map[model.OptionID]struct{}, len(options))
		blank := 0
		for i := range options {
			if _, dup := seen[options[i].ID]; options[i].ID == "" || dup {
				options[i].ID = s.newID()
			}
			seen[options[i].ID] = struct{}{}
			if strings.TrimSpace(options[i].Text) == "" {
				blank++
			}
		}
		if len(options) > s.cfg.MaxOptions() || blank > 0 {
			s.logger.Warn("imported options break wheel limits",
				zap.Int("options", len(options)),
				zap.Int("max", s.cfg.MaxOptions()),
				zap.Int("blank", blank),
			)
		}
	}
	results := s.results
	if doc.Results != nil {
		results = model.CloneResults(*doc.Results)
	}

	if doc.Options != nil || doc.Results != nil {
		if err := s.saveBoth(ctx, options, results); err != nil {
			metrics.Import(false)
			return nil, err
		}
	}

	metrics.Import(true)
	s.logger.Info("state imported",
		zap.Bool("options", doc.Options != nil),
		zap.Bool("results", doc.Results != nil),
	)
	return &model.Snapshot{
		Options: model.CloneOptions(s.options),
		Results: model.CloneResults(s.results),
	}, nil
}
