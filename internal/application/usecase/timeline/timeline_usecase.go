package timeline

import (
	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
)

// TimelineUseCase covers the experience and education lists. Both follow
// the same id-keyed pattern as projects with no invariants beyond id
// uniqueness, which the store guarantees by generating ids itself.
type TimelineUseCase struct {
	registry *store.Registry
}

func NewTimelineUseCase(registry *store.Registry) *TimelineUseCase {
	return &TimelineUseCase{registry: registry}
}

func (uc *TimelineUseCase) session(id string) (*store.Store, error) {
	st, ok := uc.registry.Get(id)
	if !ok {
		return nil, apperror.NewNotFound("session", id)
	}
	return st, nil
}

type AddExperienceInput struct {
	SessionID string
	Draft     store.ExperienceDraft
}

type AddExperienceOutput struct {
	Experience portfolio.Experience
	Snapshot   store.Snapshot
}

func (uc *TimelineUseCase) ExecuteAddExperience(input AddExperienceInput) (*AddExperienceOutput, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return nil, err
	}
	e, snap := st.AddExperience(input.Draft)
	return &AddExperienceOutput{Experience: e, Snapshot: snap}, nil
}

type UpdateExperienceInput struct {
	SessionID    string
	ExperienceID string
	Patch        store.ExperiencePatch
}

func (uc *TimelineUseCase) ExecuteUpdateExperience(input UpdateExperienceInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.UpdateExperience(input.ExperienceID, input.Patch), nil
}

type RemoveExperienceInput struct {
	SessionID    string
	ExperienceID string
}

func (uc *TimelineUseCase) ExecuteRemoveExperience(input RemoveExperienceInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.RemoveExperience(input.ExperienceID), nil
}

type AddEducationInput struct {
	SessionID string
	Draft     store.EducationDraft
}

type AddEducationOutput struct {
	Education portfolio.Education
	Snapshot  store.Snapshot
}

func (uc *TimelineUseCase) ExecuteAddEducation(input AddEducationInput) (*AddEducationOutput, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return nil, err
	}
	e, snap := st.AddEducation(input.Draft)
	return &AddEducationOutput{Education: e, Snapshot: snap}, nil
}

type UpdateEducationInput struct {
	SessionID   string
	EducationID string
	Patch       store.EducationPatch
}

func (uc *TimelineUseCase) ExecuteUpdateEducation(input UpdateEducationInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.UpdateEducation(input.EducationID, input.Patch), nil
}

type RemoveEducationInput struct {
	SessionID   string
	EducationID string
}

func (uc *TimelineUseCase) ExecuteRemoveEducation(input RemoveEducationInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.RemoveEducation(input.EducationID), nil
}
