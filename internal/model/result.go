package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Timestamp момент выбора, в JSON хранится как Unix-миллисекунды
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UnixMilli())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var parsed time.Time
		if err := json.Unmarshal(data, &parsed); err != nil {
			return err
		}
		*t = Timestamp(parsed)
		return nil
	}

	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*t = Timestamp(time.UnixMilli(int64(ms)))
	return nil
}

// Result снимок выпавшей опции. Поля опции лежат в JSON на верхнем уровне
// рядом с timestamp, как в файлах экспорта.
type Result struct {
	Option
	Timestamp Timestamp `json:"timestamp"`
}

// NewResult фиксирует снимок опции; время округляется до миллисекунд,
// чтобы экспорт и импорт давали то же самое значение
func NewResult(opt Option, at time.Time) Result {
	return Result{Option: opt, Timestamp: Timestamp(time.UnixMilli(at.UnixMilli()))}
}

func CloneResults(results []Result) []Result {
	if results == nil {
		return []Result{}
	}
	out := make([]Result, len(results))
	copy(out, results)
	return out
}
