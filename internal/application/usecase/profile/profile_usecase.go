package profile

import (
	"strings"

	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/internal/store"
	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
)

type ProfileUseCase struct {
	registry *store.Registry
}

func NewProfileUseCase(registry *store.Registry) *ProfileUseCase {
	return &ProfileUseCase{registry: registry}
}

func (uc *ProfileUseCase) session(id string) (*store.Store, error) {
	st, ok := uc.registry.Get(id)
	if !ok {
		return nil, apperror.NewNotFound("session", id)
	}
	return st, nil
}

type UpdateProfileInput struct {
	SessionID string
	Patch     store.ProfilePatch
}

// ExecuteUpdateProfile shallow-merges the patch. No validation beyond the
// session lookup; empty strings are legal values.
func (uc *ProfileUseCase) ExecuteUpdateProfile(input UpdateProfileInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.UpdateProfile(input.Patch), nil
}

type UpdateSettingsInput struct {
	SessionID string
	Patch     store.SettingsPatch
}

func (uc *ProfileUseCase) ExecuteUpdateSettings(input UpdateSettingsInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	if input.Patch.Theme != nil && !input.Patch.Theme.Valid() {
		return store.Snapshot{}, apperror.NewInvalidInput("theme must be minimal, creative, or professional", portfolio.ErrInvalidTheme)
	}
	if input.Patch.FontSize != nil && !input.Patch.FontSize.Valid() {
		return store.Snapshot{}, apperror.NewInvalidInput("unknown font size", portfolio.ErrInvalidFontSize)
	}
	if input.Patch.Spacing != nil && !input.Patch.Spacing.Valid() {
		return store.Snapshot{}, apperror.NewInvalidInput("unknown spacing", portfolio.ErrInvalidSpacing)
	}
	return st.UpdateSettings(input.Patch), nil
}

type SetSocialLinkInput struct {
	SessionID string
	Platform  string
	URL       string
}

// ExecuteSetSocialLink is the single-valued form field: one URL per
// platform label, first matching entry wins.
func (uc *ProfileUseCase) ExecuteSetSocialLink(input SetSocialLinkInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	platform := strings.TrimSpace(input.Platform)
	if platform == "" {
		return store.Snapshot{}, apperror.NewInvalidInput("platform is required", nil)
	}
	return st.SetSocialLink(platform, input.URL), nil
}

type SocialLinkIndexInput struct {
	SessionID string
	Index     int
	Link      portfolio.SocialLink
}

func (uc *ProfileUseCase) ExecuteAddSocialLink(input SocialLinkIndexInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.AddSocialLink(input.Link), nil
}

func (uc *ProfileUseCase) ExecuteUpdateSocialLink(input SocialLinkIndexInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.UpdateSocialLink(input.Index, input.Link), nil
}

func (uc *ProfileUseCase) ExecuteRemoveSocialLink(input SocialLinkIndexInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.RemoveSocialLink(input.Index), nil
}

type ResetInput struct {
	SessionID string
}

func (uc *ProfileUseCase) ExecuteReset(input ResetInput) (store.Snapshot, error) {
	st, err := uc.session(input.SessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.Reset(), nil
}
