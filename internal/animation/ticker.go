package animation

import (
	"sync"
	"time"
)

// DefaultFrameInterval примерно 60 кадров в секунду
const DefaultFrameInterval = 16 * time.Millisecond

// Ticker настоящий планировщик на time.AfterFunc
type Ticker struct {
	interval time.Duration

	mtx    sync.Mutex
	nextID FrameID
	timers map[FrameID]*time.Timer
	closed bool
}

var _ Scheduler = (*Ticker)(nil)

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Ticker{
		interval: interval,
		timers:   make(map[FrameID]*time.Timer),
	}
}

func (t *Ticker) Now() time.Time {
	return time.Now()
}

// RequestFrame запускает fn через один интервал кадра в отдельной горутине.
// После Close кадры не планируются.
func (t *Ticker) RequestFrame(fn FrameFunc) FrameID {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.closed {
		return 0
	}
	t.nextID++
	id := t.nextID
	t.timers[id] = time.AfterFunc(t.interval, func() {
		t.mtx.Lock()
		_, pending := t.timers[id]
		delete(t.timers, id)
		t.mtx.Unlock()
		if pending {
			fn(time.Now())
		}
	})
	return id
}

func (t *Ticker) CancelFrame(id FrameID) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
}

// Pending количество кадров, которые ещё не отработали
func (t *Ticker) Pending() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return len(t.timers)
}

// Close отменяет все запланированные кадры
func (t *Ticker) Close() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.closed = true
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	return nil
}
