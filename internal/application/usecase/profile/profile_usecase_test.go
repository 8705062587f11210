package profile

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

func strPtr(s string) *string { return &s }

func newSession(t *testing.T) (*ProfileUseCase, string) {
	t.Helper()
	registry := store.NewRegistry(time.Hour, logger.NewNop())
	id, _ := registry.Create()
	return NewProfileUseCase(registry), id
}

func TestExecuteUpdateProfileMergesPatch(t *testing.T) {
	uc, sid := newSession(t)

	snap, err := uc.ExecuteUpdateProfile(UpdateProfileInput{
		SessionID: sid,
		Patch:     store.ProfilePatch{Name: strPtr("Jane Smith"), Email: strPtr("jane@example.com")},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", snap.Portfolio.Name)
	assert.Equal(t, "jane@example.com", snap.Portfolio.Contact.Email)
	assert.Equal(t, portfolio.DefaultPortfolio().Title, snap.Portfolio.Title)
}

func TestExecuteUpdateSettingsValidatesEnums(t *testing.T) {
	uc, sid := newSession(t)

	bad := portfolio.ThemeID("neon")
	_, err := uc.ExecuteUpdateSettings(UpdateSettingsInput{
		SessionID: sid,
		Patch:     store.SettingsPatch{Theme: &bad},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	badFont := portfolio.FontSize("huge")
	_, err = uc.ExecuteUpdateSettings(UpdateSettingsInput{
		SessionID: sid,
		Patch:     store.SettingsPatch{FontSize: &badFont},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	good := portfolio.ThemeProfessional
	snap, err := uc.ExecuteUpdateSettings(UpdateSettingsInput{
		SessionID: sid,
		Patch:     store.SettingsPatch{Theme: &good},
	})
	require.NoError(t, err)
	assert.Equal(t, portfolio.ThemeProfessional, snap.Settings.Theme)
}

func TestExecuteSetSocialLinkRequiresPlatform(t *testing.T) {
	uc, sid := newSession(t)

	_, err := uc.ExecuteSetSocialLink(SetSocialLinkInput{SessionID: sid, Platform: "  ", URL: "https://x"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestExecuteSetSocialLinkAppendsThenMutates(t *testing.T) {
	uc, sid := newSession(t)

	snap, err := uc.ExecuteSetSocialLink(SetSocialLinkInput{SessionID: sid, Platform: "Dribbble", URL: "https://a"})
	require.NoError(t, err)
	count := len(snap.Portfolio.SocialLinks)

	snap, err = uc.ExecuteSetSocialLink(SetSocialLinkInput{SessionID: sid, Platform: "Dribbble", URL: "https://b"})
	require.NoError(t, err)
	assert.Len(t, snap.Portfolio.SocialLinks, count)

	var url string
	for _, l := range snap.Portfolio.SocialLinks {
		if l.Platform == "Dribbble" {
			url = l.URL
		}
	}
	assert.Equal(t, "https://b", url)
}

func TestExecuteResetRestoresDefaults(t *testing.T) {
	uc, sid := newSession(t)

	_, err := uc.ExecuteUpdateProfile(UpdateProfileInput{
		SessionID: sid,
		Patch:     store.ProfilePatch{Name: strPtr("Someone Else")},
	})
	require.NoError(t, err)

	snap, err := uc.ExecuteReset(ResetInput{SessionID: sid})
	require.NoError(t, err)
	assert.Equal(t, portfolio.DefaultPortfolio(), snap.Portfolio)
	assert.Equal(t, portfolio.DefaultSettings(), snap.Settings)
}

func TestExecuteUpdateProfileUnknownSession(t *testing.T) {
	uc, _ := newSession(t)

	_, err := uc.ExecuteUpdateProfile(UpdateProfileInput{SessionID: "missing"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
