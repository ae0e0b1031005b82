package memory_repo

import (
	"context"
	"lucky_spinner/internal/repository"
	"sync"
)

// Repo состояние в памяти процесса, пропадает при выходе
type Repo struct {
	mtx    sync.RWMutex
	values map[string][]byte
}

var _ repository.StateRepository = (*Repo)(nil)

func NewMemoryRepository() *Repo {
	return &Repo{
		values: make(map[string][]byte),
	}
}

func (r *Repo) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *Repo) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.values[key] = append([]byte(nil), value...)
	return nil
}

func (r *Repo) SaveMany(ctx context.Context, values map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for k, v := range values {
		r.values[k] = append([]byte(nil), v...)
	}
	return nil
}

func (r *Repo) Close() error {
	return nil
}
