package spinner

import (
	"context"
	"lucky_spinner/internal/model"
)

// Results история от старых к новым
func (s *serv) Results(ctx context.Context) ([]model.Result, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return model.CloneResults(s.results), nil
}

func (s *serv) ClearResults(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.saveResults(ctx, []model.Result{}); err != nil {
		return err
	}
	s.logger.Info("results cleared")
	return nil
}
