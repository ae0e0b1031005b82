package spinner

import (
	"lucky_spinner/internal/animation"
	"lucky_spinner/internal/audio"
	"lucky_spinner/internal/config"
	"lucky_spinner/internal/model"
	"lucky_spinner/internal/repository"
	"lucky_spinner/internal/service"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RandomSource источник случайных индексов; *rand.Rand из math/rand/v2 подходит
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type Deps struct {
	Config    config.WheelConfig
	Repo      repository.StateRepository
	Scheduler animation.Scheduler
	SpinSound audio.Player
	WinSound  audio.Player
	Rand      RandomSource
	NewID     func() model.OptionID
	Logger    *zap.Logger
}

type serv struct {
	cfg       config.WheelConfig
	repo      repository.StateRepository
	scheduler animation.Scheduler
	spinSound audio.Player
	winSound  audio.Player
	rng       RandomSource
	newID     func() model.OptionID
	collator  *collate.Collator
	logger    *zap.Logger

	mtx      sync.Mutex
	options  []model.Option
	results  []model.Result
	darkMode bool
	wheel    model.WheelState

	// кадр анимации, который ещё не отработал
	frame animation.FrameID
	// текущий спин; spinSeq отсекает кадры брошенных спинов
	ticket  *model.SpinTicket
	spinSeq uint64
}

// NewSpinnerService колесо с реестром опций. Звуки и планировщик принадлежат вызывающему.
func NewSpinnerService(deps Deps) service.SpinnerService {
	s := &serv{
		cfg:       deps.Config,
		repo:      deps.Repo,
		scheduler: deps.Scheduler,
		spinSound: deps.SpinSound,
		winSound:  deps.WinSound,
		rng:       deps.Rand,
		newID:     deps.NewID,
		collator:  collate.New(language.Und),
		logger:    deps.Logger,
		options:   []model.Option{},
		results:   []model.Result{},
	}
	if s.spinSound == nil {
		s.spinSound = audio.Nop()
	}
	if s.winSound == nil {
		s.winSound = audio.Nop()
	}
	if s.rng == nil {
		s.rng = globalRand{}
	}
	if s.newID == nil {
		s.newID = func() model.OptionID { return model.OptionID(uuid.NewString()) }
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}
