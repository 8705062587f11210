package preview

import (
	"sync"

	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
)

// Projection is the read-only view the preview renders from. It resolves
// everything presentation needs ahead of time: the theme variant (with the
// minimal fallback for unknown ids) and the omit-when-empty section flags.
type Projection struct {
	Portfolio    *portfolio.Portfolio
	Settings     *portfolio.Settings
	Theme        portfolio.Theme
	ShowSkills   bool
	ShowProjects bool
	Revision     uint64
}

type PreviewUseCase struct {
	registry *store.Registry
}

func NewPreviewUseCase(registry *store.Registry) *PreviewUseCase {
	return &PreviewUseCase{registry: registry}
}

func Project(snap store.Snapshot) Projection {
	return Projection{
		Portfolio:    snap.Portfolio,
		Settings:     snap.Settings,
		Theme:        portfolio.ThemeByID(snap.Settings.Theme),
		ShowSkills:   len(snap.Portfolio.Skills) > 0,
		ShowProjects: len(snap.Portfolio.Projects) > 0,
		Revision:     snap.Revision,
	}
}

type GetPreviewInput struct {
	SessionID string
}

func (uc *PreviewUseCase) ExecuteGet(input GetPreviewInput) (Projection, error) {
	st, ok := uc.registry.Get(input.SessionID)
	if !ok {
		return Projection{}, apperror.NewNotFound("session", input.SessionID)
	}
	return Project(st.Snapshot()), nil
}

type WatchInput struct {
	SessionID string
}

// ExecuteWatch subscribes to the session's store; the returned channel
// carries one projection per mutation. Callers must invoke cancel when
// done; cancel also unblocks the forwarder when the consumer stopped
// reading with projections still pending.
func (uc *PreviewUseCase) ExecuteWatch(input WatchInput) (<-chan Projection, func(), error) {
	st, ok := uc.registry.Get(input.SessionID)
	if !ok {
		return nil, nil, apperror.NewNotFound("session", input.SessionID)
	}

	snaps, unsubscribe := st.Subscribe(8)
	out := make(chan Projection, 8)
	done := make(chan struct{})

	var once sync.Once
	cancel := func() {
		unsubscribe()
		once.Do(func() { close(done) })
	}

	go func() {
		defer close(out)
		for snap := range snaps {
			select {
			case out <- Project(snap):
			case <-done:
				return
			}
		}
	}()
	return out, cancel, nil
}
