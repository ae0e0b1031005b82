// Package animation даёт кадровый планировщик для анимации колеса.
// Сервис не знает, откуда приходят кадры: в бинарнике это таймер,
// в тестах виртуальные часы.
package animation

import "time"

// FrameID идентификатор запланированного кадра; 0 значит "нет кадра"
type FrameID uint64

// FrameFunc колбэк кадра, получает время кадра
type FrameFunc func(now time.Time)

// Scheduler планирует колбэк на следующий кадр и умеет его отменить
type Scheduler interface {
	Now() time.Time
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}
