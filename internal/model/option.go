package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// OptionID идентификатор опции колеса.
// Старые экспорты хранят id числом (миллисекунды), новые опции получают UUID.
type OptionID string

func (id *OptionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OptionID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("option id must be a string or a number")
	}
	if i, err := n.Int64(); err == nil {
		*id = OptionID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = OptionID(n.String())
	return nil
}

type Option struct {
	ID     OptionID `json:"id"`
	Text   string   `json:"text"`
	Active bool     `json:"active"`
}

// ActiveOptions возвращает опции, которые ещё могут выпасть, в порядке списка
func ActiveOptions(options []Option) []Option {
	active := make([]Option, 0, len(options))
	for _, opt := range options {
		if opt.Active {
			active = append(active, opt)
		}
	}
	return active
}

// CloneOptions копия списка, чтобы не делить backing array с состоянием сервиса
func CloneOptions(options []Option) []Option {
	if options == nil {
		return []Option{}
	}
	out := make([]Option, len(options))
	copy(out, options)
	return out
}
