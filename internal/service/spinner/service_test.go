package spinner_test

import (
	"context"
	"errors"
	"fmt"
	"lucky_spinner/internal/animation"
	"lucky_spinner/internal/audio"
	"lucky_spinner/internal/config"
	"lucky_spinner/internal/config/env"
	"lucky_spinner/internal/model"
	"lucky_spinner/internal/repository/memory_repo"
	"lucky_spinner/internal/service"
	"lucky_spinner/internal/service/spinner"
	"math/rand/v2"
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// fixedRand всегда отдаёт value (по модулю n)
type fixedRand struct {
	value int
}

func (r fixedRand) IntN(n int) int { return r.value % n }

// flakyRepo память, которая по флагу отказывается писать
type flakyRepo struct {
	*memory_repo.Repo

	mtx  sync.Mutex
	fail bool
}

var errDiskFull = errors.New("disk full")

func (r *flakyRepo) setFail(fail bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.fail = fail
}

func (r *flakyRepo) failing() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.fail
}

func (r *flakyRepo) Save(ctx context.Context, key string, value []byte) error {
	if r.failing() {
		return errDiskFull
	}
	return r.Repo.Save(ctx, key, value)
}

func (r *flakyRepo) SaveMany(ctx context.Context, values map[string][]byte) error {
	if r.failing() {
		return errDiskFull
	}
	return r.Repo.SaveMany(ctx, values)
}

type fixture struct {
	serv      service.SpinnerService
	clock     *animation.Manual
	repo      *flakyRepo
	spinSound *audio.LogPlayer
	winSound  *audio.LogPlayer
	cfg       config.WheelConfig
}

type fixtureOpt func(*spinner.Deps)

func withRand(r spinner.RandomSource) fixtureOpt {
	return func(d *spinner.Deps) { d.Rand = r }
}

func withConfig(cfg config.WheelConfig) fixtureOpt {
	return func(d *spinner.Deps) { d.Config = cfg }
}

func newFixture(t *testing.T, opts ...fixtureOpt) *fixture {
	t.Helper()
	return newFixtureWithRepo(t, &flakyRepo{Repo: memory_repo.NewMemoryRepository()}, opts...)
}

func newFixtureWithRepo(t *testing.T, repo *flakyRepo, opts ...fixtureOpt) *fixture {
	t.Helper()

	ids := 0
	f := &fixture{
		clock:     animation.NewManual(epoch),
		repo:      repo,
		spinSound: audio.NewLogPlayer(audio.SpinCue, nil),
		winSound:  audio.NewLogPlayer(audio.ClapCue, nil),
	}
	deps := spinner.Deps{
		Config:    env.DefaultWheelConfig(),
		Repo:      repo,
		Scheduler: f.clock,
		SpinSound: f.spinSound,
		WinSound:  f.winSound,
		Rand:      rand.New(rand.NewPCG(1, 2)),
		NewID: func() model.OptionID {
			ids++
			return model.OptionID(fmt.Sprintf("opt-%d", ids))
		},
	}
	for _, opt := range opts {
		opt(&deps)
	}
	f.cfg = deps.Config

	f.serv = spinner.NewSpinnerService(deps)
	if err := f.serv.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	t.Cleanup(func() { _ = f.serv.Close() })
	return f
}

func (f *fixture) add(t *testing.T, texts ...string) []model.Option {
	t.Helper()
	added := make([]model.Option, 0, len(texts))
	for _, text := range texts {
		opt, ok, err := f.serv.AddOption(context.Background(), text)
		if err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
		if !ok {
			t.Fatalf("add %q: option was not added", text)
		}
		added = append(added, opt)
	}
	return added
}

func (f *fixture) options(t *testing.T) []model.Option {
	t.Helper()
	options, err := f.serv.Options(context.Background())
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	return options
}

func (f *fixture) results(t *testing.T) []model.Result {
	t.Helper()
	results, err := f.serv.Results(context.Background())
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	return results
}

func (f *fixture) wheel(t *testing.T) *model.Wheel {
	t.Helper()
	w, err := f.serv.Wheel(context.Background())
	if err != nil {
		t.Fatalf("wheel: %v", err)
	}
	return w
}

// spinToEnd запускает спин и доводит анимацию до конца виртуальными часами
func (f *fixture) spinToEnd(t *testing.T) *model.SpinTicket {
	t.Helper()
	ticket, err := f.serv.Spin(context.Background())
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	f.clock.RunFor(ticket.Duration+time.Second, f.cfg.FrameInterval())
	select {
	case <-ticket.Done():
	default:
		t.Fatal("spin did not settle")
	}
	return ticket
}

func texts(options []model.Option) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		out[i] = opt.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
