package animation

import (
	"sort"
	"sync"
	"time"
)

// Manual виртуальные часы: время двигается только через Advance,
// кадры выполняются синхронно в вызывающей горутине
type Manual struct {
	mtx     sync.Mutex
	now     time.Time
	nextID  FrameID
	pending map[FrameID]FrameFunc
}

var _ Scheduler = (*Manual)(nil)

func NewManual(start time.Time) *Manual {
	return &Manual{
		now:     start,
		pending: make(map[FrameID]FrameFunc),
	}
}

func (m *Manual) Now() time.Time {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.now
}

func (m *Manual) RequestFrame(fn FrameFunc) FrameID {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.nextID++
	m.pending[m.nextID] = fn
	return m.nextID
}

func (m *Manual) CancelFrame(id FrameID) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	delete(m.pending, id)
}

// Pending количество ожидающих кадров
func (m *Manual) Pending() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return len(m.pending)
}

// Advance сдвигает часы на d и выполняет кадры, ожидавшие на момент вызова.
// Кадры, запрошенные внутри колбэков, ждут следующего Advance.
// Возвращает число выполненных кадров.
func (m *Manual) Advance(d time.Duration) int {
	m.mtx.Lock()
	m.now = m.now.Add(d)
	now := m.now
	ids := make([]FrameID, 0, len(m.pending))
	for id := range m.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	m.mtx.Unlock()

	ran := 0
	for _, id := range ids {
		m.mtx.Lock()
		fn, ok := m.pending[id]
		delete(m.pending, id)
		m.mtx.Unlock()
		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	return ran
}

// RunFor гоняет кадры шагом step, пока не пройдёт total или не кончатся кадры
func (m *Manual) RunFor(total, step time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		if m.Pending() == 0 {
			return
		}
		m.Advance(step)
	}
}
