package memory_repo

import (
	"context"
	"testing"

	"lucky_spinner/internal/repository"
)

func TestRepo_CopiesValues(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	value := []byte(`[1]`)
	if err := r.Save(ctx, repository.OptionsKey, value); err != nil {
		t.Fatal(err)
	}
	value[1] = '2'

	got, err := r.Load(ctx, repository.OptionsKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[1]" {
		t.Errorf("stored value changed through the caller's slice: %q", got)
	}

	got[1] = '3'
	again, _ := r.Load(ctx, repository.OptionsKey)
	if string(again) != "[1]" {
		t.Errorf("stored value changed through a loaded slice: %q", again)
	}
}

func TestRepo_MissingKeyAndCancel(t *testing.T) {
	r := NewMemoryRepository()

	got, err := r.Load(context.Background(), repository.ResultsKey)
	if err != nil || got != nil {
		t.Errorf("missing key: got %q err=%v", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.SaveMany(ctx, map[string][]byte{repository.ResultsKey: []byte(`[]`)}); err == nil {
		t.Error("expected cancelled context error")
	}
	if got, _ := r.Load(context.Background(), repository.ResultsKey); got != nil {
		t.Errorf("cancelled save must not write, got %q", got)
	}
}
