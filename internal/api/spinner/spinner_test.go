package spinner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"lucky_spinner/internal/model"
	"lucky_spinner/internal/service"
	spinnerServ "lucky_spinner/internal/service/spinner"
	"lucky_spinner/internal/testutil"
	"lucky_spinner/pkg/resp"
	"net/http"
	"strings"
	"testing"
)

// stubService отдаёт заданную ошибку из всех вызываемых методов
type stubService struct {
	service.SpinnerService
	err error
}

func (s *stubService) Spin(context.Context) (*model.SpinTicket, error) {
	return nil, s.err
}

func (s *stubService) Import(context.Context, io.Reader) (*model.Snapshot, error) {
	return nil, s.err
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"empty pool", spinnerServ.ErrEmptySelectionPool, http.StatusUnprocessableEntity, codeEmptyPool},
		{"spinning", spinnerServ.ErrSpinInProgress, http.StatusConflict, codeSpinning},
		{"not found", spinnerServ.ErrOptionNotFound, http.StatusNotFound, codeNotFound},
		{"not confirmed", spinnerServ.ErrNotConfirmed, http.StatusPreconditionFailed, codeNotConfirmed},
		{"wrapped import error", fmt.Errorf("%w: unexpected EOF", spinnerServ.ErrImportParse), http.StatusBadRequest, codeBadRequest},
		{"storage", errors.New("connection refused"), http.StatusInternalServerError, codeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(HandlerDeps{Serv: &stubService{err: tt.err}})

			w := testutil.Serve(http.HandlerFunc(h.Spin), testutil.MakeRequest(http.MethodPost, "/spin", nil))
			testutil.AssertStatus(t, w, tt.wantCode)

			var body resp.ErrorResponse
			testutil.AssertJSON(t, w, &body)
			if body.Error != tt.wantErr {
				t.Errorf("error code = %q, want %q", body.Error, tt.wantErr)
			}
			if tt.wantCode == http.StatusInternalServerError && body.Message != "storage failure" {
				t.Errorf("internal errors must not leak details, got %q", body.Message)
			}
		})
	}
}

func TestConfirmed(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"?confirm=true", true},
		{"?confirm=1", true},
		{"?confirm=no", false},
	}
	for _, tt := range tests {
		r := testutil.MakeRequest(http.MethodDelete, "/options"+tt.query, nil)
		if got := confirmed(r); got != tt.want {
			t.Errorf("confirmed(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

// readingService читает тело импорта целиком
type readingService struct {
	service.SpinnerService
}

func (s *readingService) Import(_ context.Context, r io.Reader) (*model.Snapshot, error) {
	if _, err := io.ReadAll(r); err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	return &model.Snapshot{}, nil
}

func TestImport_BodyLimit(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &readingService{}})

	tests := []struct {
		name     string
		size     int
		wantCode int
	}{
		{"within limit", 1024, http.StatusOK},
		{"too large", maxImportBytes + 1, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"options": [], "pad": "` + strings.Repeat("x", tt.size) + `"}`
			w := testutil.Serve(http.HandlerFunc(h.Import), testutil.MakeRequest(http.MethodPost, "/import", body))
			testutil.AssertStatus(t, w, tt.wantCode)

			if tt.wantCode != http.StatusOK {
				var errBody resp.ErrorResponse
				testutil.AssertJSON(t, w, &errBody)
				if errBody.Error != codeTooLarge {
					t.Errorf("error code = %q, want %q", errBody.Error, codeTooLarge)
				}
			}
		})
	}
}

func TestImport_StorageFailure(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubService{err: errors.New("tx aborted")}})

	w := testutil.Serve(http.HandlerFunc(h.Import), testutil.MakeRequest(http.MethodPost, "/import", `{"options": []}`))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
