package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

// fakeRasterizer returns a fixed-height white raster without a browser.
type fakeRasterizer struct {
	heightPx int
	err      error

	started chan struct{}
	release chan struct{}
}

func (f *fakeRasterizer) Render(ctx context.Context, html string, widthPx int, scale float64) (image.Image, error) {
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return imaging.New(widthPx, f.heightPx, color.NRGBA{255, 255, 255, 255}), nil
}

func a4PageHeightPx(width int) int {
	return int(float64(width) * 297 / 210)
}

func pagedConfig() PagedExportConfig {
	return PagedExportConfig{
		StylesheetURL: "https://example.com/style.css",
		PageWidthPx:   800,
		Scale:         2.0,
		Timeout:       5 * time.Second,
	}
}

func newSession(t *testing.T) (*store.Registry, string) {
	t.Helper()
	registry := store.NewRegistry(time.Hour, logger.NewNop())
	id, _ := registry.Create()
	return registry, id
}

func strPtr(s string) *string { return &s }

func TestHTMLExportFilenameAndContent(t *testing.T) {
	registry, sid := newSession(t)
	st, _ := registry.Get(sid)
	st.UpdateProfile(store.ProfilePatch{Name: strPtr("Jane Smith")})

	uc := NewHTMLExportUseCase(registry, "https://example.com/style.css", logger.NewNop())
	out, err := uc.Execute(context.Background(), HTMLExportInput{SessionID: sid})
	require.NoError(t, err)

	assert.Equal(t, "jane-smith-portfolio", out.Filename)
	assert.Contains(t, out.Content, "Jane Smith")
	assert.Contains(t, out.Content, "<!DOCTYPE html>")
}

func TestHTMLExportUnknownSession(t *testing.T) {
	registry, _ := newSession(t)

	uc := NewHTMLExportUseCase(registry, "", logger.NewNop())
	_, err := uc.Execute(context.Background(), HTMLExportInput{SessionID: "missing"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPagedExportProducesPDF(t *testing.T) {
	registry, sid := newSession(t)

	// Two and a bit pages worth of raster.
	heightPx := a4PageHeightPx(800)*2 + 50
	uc := NewPagedExportUseCase(registry, &fakeRasterizer{heightPx: heightPx}, pagedConfig(), logger.NewNop())

	out, err := uc.Execute(context.Background(), PagedExportInput{SessionID: sid})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Pages)
	assert.True(t, bytes.HasPrefix(out.PDF, []byte("%PDF-")))
	assert.Equal(t, "john-doe-portfolio", out.Filename)
}

func TestPagedExportRendererFailure(t *testing.T) {
	registry, sid := newSession(t)

	uc := NewPagedExportUseCase(registry, &fakeRasterizer{err: errors.New("no browser")}, pagedConfig(), logger.NewNop())
	_, err := uc.Execute(context.Background(), PagedExportInput{SessionID: sid})
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestPagedExportReentrancyConflict(t *testing.T) {
	registry, sid := newSession(t)

	blocking := &fakeRasterizer{
		heightPx: 100,
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	uc := NewPagedExportUseCase(registry, blocking, pagedConfig(), logger.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), PagedExportInput{SessionID: sid})
		done <- err
	}()

	<-blocking.started
	_, err := uc.Execute(context.Background(), PagedExportInput{SessionID: sid})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	close(blocking.release)
	require.NoError(t, <-done)

	// Slot frees after the first export finishes.
	blocking.started = nil
	_, err = uc.Execute(context.Background(), PagedExportInput{SessionID: sid})
	assert.NoError(t, err)
}

func TestPagedExportUnknownSession(t *testing.T) {
	registry, _ := newSession(t)

	uc := NewPagedExportUseCase(registry, &fakeRasterizer{heightPx: 100}, pagedConfig(), logger.NewNop())
	_, err := uc.Execute(context.Background(), PagedExportInput{SessionID: "missing"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
