package spinner

import (
	"context"
	"fmt"
	"lucky_spinner/internal/metrics"
	"lucky_spinner/internal/repository"
)

func (s *serv) DarkMode(ctx context.Context) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.darkMode, nil
}

func (s *serv) SetDarkMode(ctx context.Context, dark bool) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	data, err := encode(dark)
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, repository.DarkModeKey, data); err != nil {
		metrics.PersistFailures.Inc()
		return fmt.Errorf("save theme: %w", err)
	}
	s.darkMode = dark
	return nil
}
