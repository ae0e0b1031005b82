package spinner

import (
	"context"
	"lucky_spinner/internal/model"
	"sort"
	"strings"

	"go.uber.org/zap"
)

func (s *serv) Options(ctx context.Context) ([]model.Option, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return model.CloneOptions(s.options), nil
}

// AddOption пустой текст или заполненное колесо это не ошибка, а no-op: added=false
func (s *serv) AddOption(ctx context.Context, text string) (model.Option, bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	text = s.normalizeText(text)
	if text == "" {
		s.logger.Debug("option ignored: empty text")
		return model.Option{}, false, nil
	}
	if len(s.options) >= s.cfg.MaxOptions() {
		s.logger.Debug("option ignored: wheel is full", zap.Int("max", s.cfg.MaxOptions()))
		return model.Option{}, false, nil
	}

	opt := model.Option{
		ID:     s.newID(),
		Text:   text,
		Active: true,
	}
	next := append(model.CloneOptions(s.options), opt)
	if err := s.saveOptions(ctx, next); err != nil {
		return model.Option{}, false, err
	}

	s.logger.Info("option added", zap.String("option_id", string(opt.ID)))
	return opt, true, nil
}

// UpdateOption меняет текст; пустой после trim текст оставляет опцию как есть
func (s *serv) UpdateOption(ctx context.Context, id model.OptionID, text string) (model.Option, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Option{}, ErrOptionNotFound
	}

	text = s.normalizeText(text)
	if text == "" || text == s.options[idx].Text {
		return s.options[idx], nil
	}

	next := model.CloneOptions(s.options)
	next[idx].Text = text
	if err := s.saveOptions(ctx, next); err != nil {
		return model.Option{}, err
	}

	s.logger.Info("option updated", zap.String("option_id", string(id)))
	return next[idx], nil
}

func (s *serv) RemoveOption(ctx context.Context, id model.OptionID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrOptionNotFound
	}

	next := make([]model.Option, 0, len(s.options)-1)
	next = append(next, s.options[:idx]...)
	next = append(next, s.options[idx+1:]...)
	if err := s.saveOptions(ctx, next); err != nil {
		return err
	}

	s.logger.Info("option removed", zap.String("option_id", string(id)))
	return nil
}

// SortOptions сортировка с учётом регистра и локали (как localeCompare)
func (s *serv) SortOptions(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next := model.CloneOptions(s.options)
	sort.SliceStable(next, func(i, j int) bool {
		return s.collator.CompareString(next[i].Text, next[j].Text) < 0
	})
	return s.saveOptions(ctx, next)
}

// ShuffleOptions перемешивание Фишера-Йетса
func (s *serv) ShuffleOptions(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next := model.CloneOptions(s.options)
	for i := len(next) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		next[i], next[j] = next[j], next[i]
	}
	return s.saveOptions(ctx, next)
}

func (s *serv) ClearOptions(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.saveOptions(ctx, []model.Option{}); err != nil {
		return err
	}
	s.logger.Info("options cleared")
	return nil
}

// normalizeText поле ввода режет текст до максимальной длины, потом trim
func (s *serv) normalizeText(text string) string {
	if limit := s.cfg.MaxTextLength(); limit > 0 {
		if runes := []rune(text); len(runes) > limit {
			text = string(runes[:limit])
		}
	}
	return strings.TrimSpace(text)
}

func (s *serv) indexOf(id model.OptionID) int {
	for i, opt := range s.options {
		if opt.ID == id {
			return i
		}
	}
	return -1
}
