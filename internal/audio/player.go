// Package audio звуковые сигналы колеса. Сами звуки играет клиент,
// сервис только говорит, когда начать и остановить.
package audio

import (
	"sync"

	"go.uber.org/zap"
)

// Player управляет одним звуком
type Player interface {
	Play()
	Stop()
	Close() error
}

// Cue описание звука из конфигурации
type Cue struct {
	Name   string
	Src    string
	Loop   bool
	Volume float64
}

var (
	SpinCue = Cue{Name: "spin", Src: "/audio/spin.mp3", Loop: true, Volume: 0.5}
	ClapCue = Cue{Name: "clap", Src: "/audio/clap.mp3", Volume: 0.8}
)

// LogPlayer пишет события звука в лог и помнит, играет ли звук сейчас
type LogPlayer struct {
	cue    Cue
	logger *zap.Logger

	mtx     sync.Mutex
	playing bool
	plays   int
	closed  bool
}

var _ Player = (*LogPlayer)(nil)

func NewLogPlayer(cue Cue, logger *zap.Logger) *LogPlayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPlayer{cue: cue, logger: logger.Named("audio")}
}

func (p *LogPlayer) Play() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.closed {
		return
	}
	// у зацикленного звука повторный Play ничего не меняет
	if p.cue.Loop && p.playing {
		return
	}
	p.playing = p.cue.Loop
	p.plays++
	p.logger.Debug("cue play",
		zap.String("cue", p.cue.Name),
		zap.String("src", p.cue.Src),
		zap.Bool("loop", p.cue.Loop),
		zap.Float64("volume", p.cue.Volume),
	)
}

func (p *LogPlayer) Stop() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.closed || !p.playing {
		return
	}
	p.playing = false
	p.logger.Debug("cue stop", zap.String("cue", p.cue.Name))
}

// Playing играет ли зацикленный звук
func (p *LogPlayer) Playing() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.playing
}

// Plays сколько раз звук запускали
func (p *LogPlayer) Plays() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.plays
}

func (p *LogPlayer) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.closed = true
	p.playing = false
	return nil
}

type nop struct{}

// Nop плеер без звука
func Nop() Player { return nop{} }

func (nop) Play()        {}
func (nop) Stop()        {}
func (nop) Close() error { return nil }
