package spinner

import (
	"context"
	"lucky_spinner/internal/animation"
	"lucky_spinner/internal/metrics"
	"lucky_spinner/internal/model"
	servModel "lucky_spinner/internal/service/spinner/model"
	"time"

	"go.uber.org/zap"
)

// Spin выбирает победителя сразу и запускает анимацию до нужного сектора.
// Итог (опция неактивна, запись в истории) фиксируется, когда анимация дошла до конца.
func (s *serv) Spin(ctx context.Context) (*model.SpinTicket, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.wheel.Spinning {
		metrics.RejectSpin(metrics.ReasonInProgress)
		return nil, ErrSpinInProgress
	}

	active := model.ActiveOptions(s.options)
	if len(active) == 0 {
		metrics.RejectSpin(metrics.ReasonEmptyPool)
		return nil, ErrEmptySelectionPool
	}

	// Равновероятный выбор среди активных опций
	index := s.rng.IntN(len(active))
	minSpins, maxSpins := s.cfg.ExtraSpinsRange()
	extraSpins := minSpins + s.rng.IntN(maxSpins-minSpins+1)

	ticket := model.NewSpinTicket()
	ticket.Winner = active[index]
	ticket.Index = index
	ticket.ActiveCount = len(active)
	ticket.ExtraSpins = extraSpins
	ticket.StartRotation = s.wheel.Rotation
	ticket.FinalRotation = servModel.FinalRotation(
		s.wheel.Rotation, index, len(active), extraSpins, s.cfg.PointerAngle())
	ticket.Duration = s.cfg.SpinDuration()
	ticket.StartedAt = s.scheduler.Now()

	s.wheel.Spinning = true
	s.wheel.ShowWinner = false
	s.spinSound.Play()

	// старый кадр (например, после сброса посреди анимации) не должен дожить до нового спина
	s.cancelFrame()
	s.spinSeq++
	s.ticket = ticket
	s.frame = s.scheduler.RequestFrame(s.animate(ticket, s.spinSeq))

	s.logger.Info("spin started",
		zap.String("option_id", string(ticket.Winner.ID)),
		zap.Int("index", index),
		zap.Int("active", len(active)),
		zap.Int("extra_spins", extraSpins),
		zap.Float64("final_rotation", ticket.FinalRotation),
	)
	return ticket, nil
}

// animate колбэк кадра: двигает колесо по кривой замедления и перепланирует себя,
// пока прогресс не дошёл до 1
func (s *serv) animate(ticket *model.SpinTicket, seq uint64) animation.FrameFunc {
	return func(now time.Time) {
		s.mtx.Lock()
		defer s.mtx.Unlock()

		if seq != s.spinSeq || !s.wheel.Spinning {
			return
		}

		progress := servModel.Progress(now.Sub(ticket.StartedAt), ticket.Duration)
		s.wheel.Rotation = servModel.Interpolate(ticket.StartRotation, ticket.FinalRotation, progress)

		if progress < 1 {
			s.frame = s.scheduler.RequestFrame(s.animate(ticket, seq))
			return
		}

		s.frame = 0
		s.settle(ticket, now)
	}
}

// settle итог спина. Вызывается под s.mtx.
func (s *serv) settle(ticket *model.SpinTicket, now time.Time) {
	s.wheel.Rotation = ticket.FinalRotation

	options := model.CloneOptions(s.options)
	// опцию могли удалить во время анимации, тогда в истории остаётся только снимок
	for i := range options {
		if options[i].ID == ticket.Winner.ID {
			options[i].Active = false
			break
		}
	}
	results := append(model.CloneResults(s.results), model.NewResult(ticket.Winner, now))

	ctx, cancel := context.WithTimeout(context.Background(), settleSaveTimeout)
	defer cancel()
	if err := s.saveBoth(ctx, options, results); err != nil {
		s.logger.Error("failed to persist spin result", zap.Error(err))
		s.options = options
		s.results = results
		s.updateGauges()
	}

	winner := ticket.Winner.Text
	s.wheel.Winner = &winner
	s.wheel.Spinning = false
	s.wheel.ShowWinner = true
	s.ticket = nil

	s.spinSound.Stop()
	s.winSound.Play()
	metrics.SpinsTotal.Inc()

	s.logger.Info("spin settled",
		zap.String("option_id", string(ticket.Winner.ID)),
		zap.Int("results", len(s.results)),
	)
	ticket.Settle()
}

// cancelFrame снимает запланированный кадр. Вызывается под s.mtx.
func (s *serv) cancelFrame() {
	if s.frame != 0 {
		s.scheduler.CancelFrame(s.frame)
		s.frame = 0
	}
}

// abandonSpin бросает текущий спин без записи результата. Вызывается под s.mtx.
func (s *serv) abandonSpin() {
	s.cancelFrame()
	if !s.wheel.Spinning {
		return
	}
	s.spinSeq++
	s.wheel.Spinning = false
	s.spinSound.Stop()
	if s.ticket != nil {
		s.ticket.Abandon()
		s.ticket = nil
	}
	metrics.SpinsAbandoned.Inc()
	s.logger.Info("spin abandoned")
}

func (s *serv) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.abandonSpin()
	return nil
}
