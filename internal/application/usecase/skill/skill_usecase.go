package skill

import (
	"strings"

	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
)

// DefaultLevel is what the entry form resets its slider to after an add.
const DefaultLevel = 50

type SkillUseCase struct {
	registry *store.Registry
}

func NewSkillUseCase(registry *store.Registry) *SkillUseCase {
	return &SkillUseCase{registry: registry}
}

func (uc *SkillUseCase) session(id string) (*store.Store, error) {
	st, ok := uc.registry.Get(id)
	if !ok {
		return nil, apperror.NewNotFound("session", id)
	}
	return st, nil
}

type AddSkillInput struct {
	SessionID string
	Name      string
	Level     int
}

// ExecuteAdd enforces the entry-form gate: a skill needs a non-empty name
// after trimming. The level is clamped to 0-100 by the store.
func (uc *SkillUseCase) ExecuteAdd(input AddSkillInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return store.Snapshot{}, apperror.NewInvalidInput("skill name is required", nil)
	}
	return st.AddSkill(portfolio.Skill{Name: name, Level: input.Level}), nil
}

type UpdateSkillInput struct {
	SessionID string
	Index     int
	Skill     portfolio.Skill
}

func (uc *SkillUseCase) ExecuteUpdate(input UpdateSkillInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.UpdateSkill(input.Index, input.Skill), nil
}

type RemoveSkillInput struct {
	SessionID string
	Index     int
}

func (uc *SkillUseCase) ExecuteRemove(input RemoveSkillInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.RemoveSkill(input.Index), nil
}
