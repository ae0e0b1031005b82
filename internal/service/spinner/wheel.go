package spinner

import (
	"context"
	"lucky_spinner/internal/model"
	servModel "lucky_spinner/internal/service/spinner/model"

	"go.uber.org/zap"
)

// Wheel текущее состояние и сектора активных опций для отрисовки
func (s *serv) Wheel(ctx context.Context) (*model.Wheel, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	active := model.ActiveOptions(s.options)
	colors := servModel.SegmentColors(len(active))
	segAngle := servModel.SegmentAngle(len(active))

	segments := make([]model.Segment, 0, len(active))
	for i, opt := range active {
		segments = append(segments, model.Segment{
			OptionID:   opt.ID,
			Text:       opt.Text,
			Label:      servModel.Label(opt.Text, s.cfg.LabelLength()),
			StartAngle: float64(i) * segAngle,
			EndAngle:   float64(i+1) * segAngle,
			Color:      colors[i],
		})
	}

	state := s.wheel
	if s.wheel.Winner != nil {
		winner := *s.wheel.Winner
		state.Winner = &winner
	}

	return &model.Wheel{
		State:       state,
		Segments:    segments,
		ActiveCount: len(active),
		TotalCount:  len(s.options),
		AllDone:     len(s.options) > 0 && len(active) == 0,
	}, nil
}

// ResetWheel все опции снова активны, колесо в нуле. Незавершённый спин бросается.
func (s *serv) ResetWheel(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next := model.CloneOptions(s.options)
	for i := range next {
		next[i].Active = true
	}
	if err := s.saveOptions(ctx, next); err != nil {
		return err
	}

	s.abandonSpin()
	s.wheel = model.WheelState{}

	s.logger.Info("wheel reset", zap.Int("options", len(next)))
	return nil
}

func (s *serv) DismissWinner(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.wheel.ShowWinner = false
	return nil
}
