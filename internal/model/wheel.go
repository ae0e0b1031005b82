package model

import "time"

// WheelState состояние колеса, не сохраняется
type WheelState struct {
	Rotation   float64
	Spinning   bool
	Winner     *string
	ShowWinner bool
}

// Segment сектор колеса для отрисовки
type Segment struct {
	OptionID   OptionID
	Text       string
	Label      string
	StartAngle float64
	EndAngle   float64
	Color      string
}

// Wheel состояние колеса вместе с данными для отрисовки
type Wheel struct {
	State       WheelState
	Segments    []Segment
	ActiveCount int
	TotalCount  int
	AllDone     bool
}

// SpinTicket описание запущенного спина. Done закрывается, когда колесо остановилось.
type SpinTicket struct {
	Winner        Option
	Index         int
	ActiveCount   int
	ExtraSpins    int
	StartRotation float64
	FinalRotation float64
	Duration      time.Duration
	StartedAt     time.Time

	done      chan struct{}
	abandoned bool
}

func NewSpinTicket() *SpinTicket {
	return &SpinTicket{done: make(chan struct{})}
}

func (t *SpinTicket) Done() <-chan struct{} {
	return t.done
}

// Settle отмечает спин завершённым
func (t *SpinTicket) Settle() {
	select {
	case <-t.done:
	default:
		close(t.done)
	}
}

// Abandon спин брошен (колесо сбросили до остановки), результата нет
func (t *SpinTicket) Abandon() {
	select {
	case <-t.done:
	default:
		t.abandoned = true
		close(t.done)
	}
}

// Abandoned читать только после закрытия Done
func (t *SpinTicket) Abandoned() bool {
	return t.abandoned
}
