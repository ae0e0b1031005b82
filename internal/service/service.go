package service

import (
	"context"
	"io"
	"lucky_spinner/internal/model"
)

type SpinnerService interface {
	// Load читает сохранённое состояние, вызывается один раз при старте
	Load(ctx context.Context) error

	Options(ctx context.Context) ([]model.Option, error)
	AddOption(ctx context.Context, text string) (option model.Option, added bool, err error)
	UpdateOption(ctx context.Context, id model.OptionID, text string) (model.Option, error)
	RemoveOption(ctx context.Context, id model.OptionID) error
	SortOptions(ctx context.Context) error
	ShuffleOptions(ctx context.Context) error
	ClearOptions(ctx context.Context, confirmed bool) error

	Spin(ctx context.Context) (*model.SpinTicket, error)
	Wheel(ctx context.Context) (*model.Wheel, error)
	ResetWheel(ctx context.Context, confirmed bool) error
	DismissWinner(ctx context.Context) error

	Results(ctx context.Context) ([]model.Result, error)
	ClearResults(ctx context.Context, confirmed bool) error

	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (*model.Snapshot, error)

	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, dark bool) error

	// Close отменяет незавершённую анимацию
	Close() error
}
