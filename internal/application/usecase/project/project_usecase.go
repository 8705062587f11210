package project

import (
	"strings"

	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
)

type ProjectUseCase struct {
	registry *store.Registry
}

func NewProjectUseCase(registry *store.Registry) *ProjectUseCase {
	return &ProjectUseCase{registry: registry}
}

func (uc *ProjectUseCase) session(id string) (*store.Store, error) {
	st, ok := uc.registry.Get(id)
	if !ok {
		return nil, apperror.NewNotFound("session", id)
	}
	return st, nil
}

type AddProjectInput struct {
	SessionID   string
	Title       string
	Description string
	Image       *string
	Tags        []string
	Link        *string
}

type AddProjectOutput struct {
	Project  portfolio.Project
	Snapshot store.Snapshot
}

// ExecuteAdd enforces the entry-form gate: both title and description must
// be non-empty after trimming. The store assigns the id and de-duplicates
// tags on insert.
func (uc *ProjectUseCase) ExecuteAdd(input AddProjectInput) (*AddProjectOutput, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperror.NewInvalidInput("project title and description are required", nil)
	}

	tags := make([]string, 0, len(input.Tags))
	for _, t := range input.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	p, snap := st.AddProject(store.ProjectDraft{
		Title:       title,
		Description: description,
		Image:       input.Image,
		Tags:        tags,
		Link:        input.Link,
	})
	return &AddProjectOutput{Project: p, Snapshot: snap}, nil
}

type UpdateProjectInput struct {
	SessionID string
	ProjectID string
	Patch     store.ProjectPatch
}

func (uc *ProjectUseCase) ExecuteUpdate(input UpdateProjectInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.UpdateProject(input.ProjectID, input.Patch), nil
}

type RemoveProjectInput struct {
	SessionID string
	ProjectID string
}

// ExecuteRemove is idempotent; removing an unknown id leaves the list as
// it is.
func (uc *ProjectUseCase) ExecuteRemove(input RemoveProjectInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.RemoveProject(input.ProjectID), nil
}

type TagInput struct {
	SessionID string
	ProjectID string
	Tag       string
}

// ExecuteAddTag appends the trimmed tag unless the project already carries
// an exact (case-sensitive) match.
func (uc *ProjectUseCase) ExecuteAddTag(input TagInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	tag := strings.TrimSpace(input.Tag)
	if tag == "" {
		return store.Snapshot{}, apperror.NewInvalidInput("tag is required", nil)
	}
	return st.AddProjectTag(input.ProjectID, tag), nil
}

func (uc *ProjectUseCase) ExecuteRemoveTag(input TagInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.RemoveProjectTag(input.ProjectID, input.Tag), nil
}
