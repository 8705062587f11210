package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

func newSession(t *testing.T) (*ProjectUseCase, string) {
	t.Helper()
	registry := store.NewRegistry(time.Hour, logger.NewNop())
	id, _ := registry.Create()
	return NewProjectUseCase(registry), id
}

func projectByID(snap store.Snapshot, id string) (portfolio.Project, bool) {
	for _, pr := range snap.Portfolio.Projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return portfolio.Project{}, false
}

func TestExecuteAddRequiresTitleAndDescription(t *testing.T) {
	uc, sid := newSession(t)

	cases := []struct {
		title, description string
	}{
		{"", "has description"},
		{"has title", ""},
		{"   ", "has description"},
		{"has title", "  \t"},
		{"", ""},
	}
	for _, c := range cases {
		_, err := uc.ExecuteAdd(AddProjectInput{SessionID: sid, Title: c.title, Description: c.description})
		assert.ErrorIs(t, err, apperror.ErrInvalidInput, "title=%q description=%q", c.title, c.description)
	}
}

func TestExecuteAddTrimsAndAssignsID(t *testing.T) {
	uc, sid := newSession(t)

	out, err := uc.ExecuteAdd(AddProjectInput{
		SessionID:   sid,
		Title:       "  My App  ",
		Description: " Does things ",
		Tags:        []string{" Go ", "", "Go", "gin"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Project.ID)
	assert.Equal(t, "My App", out.Project.Title)
	assert.Equal(t, "Does things", out.Project.Description)
	assert.Equal(t, []string{"Go", "gin"}, out.Project.Tags)
}

func TestExecuteAddTagTwiceStoresOnce(t *testing.T) {
	uc, sid := newSession(t)

	out, err := uc.ExecuteAdd(AddProjectInput{SessionID: sid, Title: "App", Description: "desc"})
	require.NoError(t, err)

	_, err = uc.ExecuteAddTag(TagInput{SessionID: sid, ProjectID: out.Project.ID, Tag: "React"})
	require.NoError(t, err)
	snap, err := uc.ExecuteAddTag(TagInput{SessionID: sid, ProjectID: out.Project.ID, Tag: "React"})
	require.NoError(t, err)

	p, ok := projectByID(snap, out.Project.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"React"}, p.Tags)
}

func TestExecuteAddTagRejectsBlank(t *testing.T) {
	uc, sid := newSession(t)

	out, err := uc.ExecuteAdd(AddProjectInput{SessionID: sid, Title: "App", Description: "desc"})
	require.NoError(t, err)

	_, err = uc.ExecuteAddTag(TagInput{SessionID: sid, ProjectID: out.Project.ID, Tag: "  "})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestExecuteRemoveIsIdempotent(t *testing.T) {
	uc, sid := newSession(t)

	out, err := uc.ExecuteAdd(AddProjectInput{SessionID: sid, Title: "App", Description: "desc"})
	require.NoError(t, err)

	first, err := uc.ExecuteRemove(RemoveProjectInput{SessionID: sid, ProjectID: out.Project.ID})
	require.NoError(t, err)
	second, err := uc.ExecuteRemove(RemoveProjectInput{SessionID: sid, ProjectID: out.Project.ID})
	require.NoError(t, err)

	assert.Equal(t, first.Portfolio.Projects, second.Portfolio.Projects)
}

func TestExecuteUpdateUnknownSession(t *testing.T) {
	uc, _ := newSession(t)

	_, err := uc.ExecuteUpdate(UpdateProjectInput{SessionID: "gone", ProjectID: "x"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
