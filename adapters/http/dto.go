package http

import (
	"github.com/khoahotran/portfolio-crafter/internal/application/usecase/preview"
	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-crafter/internal/store"
)

// Snapshot / preview DTOs

type SnapshotDTO struct {
	Portfolio *portfolio.Portfolio `json:"portfolio"`
	Settings  *portfolio.Settings  `json:"settings"`
	Revision  uint64               `json:"revision"`
}

func ToSnapshotDTO(snap store.Snapshot) SnapshotDTO {
	return SnapshotDTO{
		Portfolio: snap.Portfolio,
		Settings:  snap.Settings,
		Revision:  snap.Revision,
	}
}

type ThemeDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Background  string `json:"background"`
}

type PreviewDTO struct {
	Portfolio    *portfolio.Portfolio `json:"portfolio"`
	Settings     *portfolio.Settings  `json:"settings"`
	Theme        ThemeDTO             `json:"theme"`
	ShowSkills   bool                 `json:"show_skills"`
	ShowProjects bool                 `json:"show_projects"`
	Revision     uint64               `json:"revision"`
}

func ToPreviewDTO(p preview.Projection) PreviewDTO {
	return PreviewDTO{
		Portfolio: p.Portfolio,
		Settings:  p.Settings,
		Theme: ThemeDTO{
			ID:          string(p.Theme.ID),
			Name:        p.Theme.Name,
			Description: p.Theme.Description,
			Background:  p.Theme.Background,
		},
		ShowSkills:   p.ShowSkills,
		ShowProjects: p.ShowProjects,
		Revision:     p.Revision,
	}
}

// Profile / settings requests. Pointer fields distinguish "not sent" from
// an explicit empty string; empty strings are legal values.

type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Title   *string `json:"title"`
	Bio     *string `json:"bio"`
	Avatar  *string `json:"avatar"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	// The clear flags remove an optional field entirely; sending an empty
	// string would store an empty value instead.
	ClearAvatar  bool `json:"clear_avatar"`
	ClearPhone   bool `json:"clear_phone"`
	ClearAddress bool `json:"clear_address"`
}

func (r *UpdateProfileRequest) ToPatch() store.ProfilePatch {
	return store.ProfilePatch{
		Name:    r.Name,
		Title:   r.Title,
		Bio:     r.Bio,
		Avatar:  r.Avatar,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,

		ClearAvatar:  r.ClearAvatar,
		ClearPhone:   r.ClearPhone,
		ClearAddress: r.ClearAddress,
	}
}

type UpdateSettingsRequest struct {
	Theme     *string `json:"theme"`
	FontSize  *string `json:"font_size"`
	Spacing   *string `json:"spacing"`
	Animation *bool   `json:"animation"`
}

func (r *UpdateSettingsRequest) ToPatch() store.SettingsPatch {
	patch := store.SettingsPatch{Animation: r.Animation}
	if r.Theme != nil {
		t := portfolio.ThemeID(*r.Theme)
		patch.Theme = &t
	}
	if r.FontSize != nil {
		f := portfolio.FontSize(*r.FontSize)
		patch.FontSize = &f
	}
	if r.Spacing != nil {
		s := portfolio.Spacing(*r.Spacing)
		patch.Spacing = &s
	}
	return patch
}

// Skill requests

type SkillRequest struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Social link requests

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url"`
}

// Project requests

type AddProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       *string  `json:"image"`
	Tags        []string `json:"tags"`
	Link        *string  `json:"link"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Tags        *[]string `json:"tags"`
	Link        *string   `json:"link"`
}

func (r *UpdateProjectRequest) ToPatch() store.ProjectPatch {
	return store.ProjectPatch{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Tags:        r.Tags,
		Link:        r.Link,
	}
}

type TagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

// Experience / education requests

type ExperienceRequest struct {
	Title         string `json:"title"`
	Company       string `json:"company"`
	Location      string `json:"location"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Description   string `json:"description"`
	IsCurrentRole bool   `json:"is_current_role"`
}

func (r *ExperienceRequest) ToDraft() store.ExperienceDraft {
	return store.ExperienceDraft{
		Title:         r.Title,
		Company:       r.Company,
		Location:      r.Location,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Description:   r.Description,
		IsCurrentRole: r.IsCurrentRole,
	}
}

type UpdateExperienceRequest struct {
	Title         *string `json:"title"`
	Company       *string `json:"company"`
	Location      *string `json:"location"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Description   *string `json:"description"`
	IsCurrentRole *bool   `json:"is_current_role"`
}

func (r *UpdateExperienceRequest) ToPatch() store.ExperiencePatch {
	return store.ExperiencePatch{
		Title:         r.Title,
		Company:       r.Company,
		Location:      r.Location,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Description:   r.Description,
		IsCurrentRole: r.IsCurrentRole,
	}
}

type EducationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r *EducationRequest) ToDraft() store.EducationDraft {
	return store.EducationDraft{
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

type UpdateEducationRequest struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (r *UpdateEducationRequest) ToPatch() store.EducationPatch {
	return store.EducationPatch{
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}
