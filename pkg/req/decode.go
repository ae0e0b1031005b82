package req

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode читает JSON тела запроса в T. Пустое тело это ошибка.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, errors.New("empty request body")
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, errors.New("empty request body")
		}
		return payload, err
	}
	return payload, nil
}
