package req

import (
	"strings"
	"testing"
)

type payload struct {
	Text string `json:"text"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"text": "hi"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "hi" {
		t.Errorf("text = %q", got.Text)
	}

	if _, err := Decode[payload](strings.NewReader("")); err == nil {
		t.Error("expected error for an empty body")
	}
	if _, err := Decode[payload](strings.NewReader("{")); err == nil {
		t.Error("expected error for broken JSON")
	}
	if _, err := Decode[payload](nil); err == nil {
		t.Error("expected error for a nil body")
	}
}
