package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/handler"
	"github.com/arisa-app/castdir/internal/handler/gen"
)

// mockCastServicer is a test double for handler.CastServicer.
// Set only the method fields your test needs.
type mockCastServicer struct {
	create  func(ctx context.Context, cast domain.Cast) (domain.Cast, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Cast, error)
	list    func(ctx context.Context, f domain.CastFilter) ([]domain.Cast, error)
	update  func(ctx context.Context, patch domain.CastPatch) (domain.Cast, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCastServicer) Create(ctx context.Context, c domain.Cast) (domain.Cast, error) {
	return m.create(ctx, c)
}
func (m *mockCastServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Cast, error) {
	return m.getByID(ctx, id)
}
func (m *mockCastServicer) List(ctx context.Context, f domain.CastFilter) ([]domain.Cast, error) {
	return m.list(ctx, f)
}
func (m *mockCastServicer) Update(ctx context.Context, p domain.CastPatch) (domain.Cast, error) {
	return m.update(ctx, p)
}
func (m *mockCastServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockCastServicer must satisfy handler.CastServicer.
var _ handler.CastServicer = (*mockCastServicer)(nil)

// mockAreaServicer is a test double for handler.AreaServicer.
type mockAreaServicer struct {
	create  func(ctx context.Context, area domain.AreaLabel) (domain.AreaLabel, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.AreaLabel, error)
	list    func(ctx context.Context) ([]domain.AreaLabel, error)
	update  func(ctx context.Context, patch domain.AreaLabelPatch) (domain.AreaLabel, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAreaServicer) Create(ctx context.Context, a domain.AreaLabel) (domain.AreaLabel, error) {
	return m.create(ctx, a)
}
func (m *mockAreaServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.AreaLabel, error) {
	return m.getByID(ctx, id)
}
func (m *mockAreaServicer) List(ctx context.Context) ([]domain.AreaLabel, error) {
	return m.list(ctx)
}
func (m *mockAreaServicer) Update(ctx context.Context, p domain.AreaLabelPatch) (domain.AreaLabel, error) {
	return m.update(ctx, p)
}
func (m *mockAreaServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.AreaServicer = (*mockAreaServicer)(nil)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context, includeInactive bool) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, includeInactive bool) ([]domain.ExportRow, error) {
	return m.export(ctx, includeInactive)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks exactly as main.go does.
func newHTTPHandler(casts handler.CastServicer, areas handler.AreaServicer, export handler.ExportServicer) http.Handler {
	srv := handler.NewServer(casts, areas, export)
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return handler.NewHTTPHandler(srv, nil, log)
}

// do sends a request with an optional JSON body and returns the recorder.
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeError decodes the shared error envelope.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func ptr[T any](v T) *T { return &v }
