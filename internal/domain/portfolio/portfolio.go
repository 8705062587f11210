package portfolio

import "errors"

// Skill level is a 0-100 percentage. The store clamps it on write.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       *string  `json:"image,omitempty"`
	Tags        []string `json:"tags"`
	Link        *string  `json:"link,omitempty"`
}

type Experience struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Company       string `json:"company"`
	Location      string `json:"location"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Description   string `json:"description"`
	IsCurrentRole bool   `json:"is_current_role"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type Contact struct {
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type Portfolio struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Bio         string       `json:"bio"`
	Avatar      *string      `json:"avatar,omitempty"`
	Skills      []Skill      `json:"skills"`
	SocialLinks []SocialLink `json:"social_links"`
	Projects    []Project    `json:"projects"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Contact     Contact      `json:"contact"`
}

type ThemeID string

const (
	ThemeMinimal      ThemeID = "minimal"
	ThemeCreative     ThemeID = "creative"
	ThemeProfessional ThemeID = "professional"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

type Spacing string

const (
	SpacingCompact  Spacing = "compact"
	SpacingNormal   Spacing = "normal"
	SpacingSpacious Spacing = "spacious"
)

type Settings struct {
	Theme     ThemeID  `json:"theme"`
	FontSize  FontSize `json:"font_size"`
	Spacing   Spacing  `json:"spacing"`
	Animation bool     `json:"animation"`
}

var (
	ErrInvalidTheme    = errors.New("unknown theme id")
	ErrInvalidFontSize = errors.New("font size must be small, medium, or large")
	ErrInvalidSpacing  = errors.New("spacing must be compact, normal, or spacious")
)

func (t ThemeID) Valid() bool {
	switch t {
	case ThemeMinimal, ThemeCreative, ThemeProfessional:
		return true
	}
	return false
}

func (f FontSize) Valid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	}
	return false
}

func (s Spacing) Valid() bool {
	switch s {
	case SpacingCompact, SpacingNormal, SpacingSpacious:
		return true
	}
	return false
}

// Clone returns a deep copy. The store hands these out so no caller can
// reach back into the live state through a shared slice or pointer.
func (p *Portfolio) Clone() *Portfolio {
	cp := *p
	cp.Avatar = clonePtr(p.Avatar)
	cp.Contact.Phone = clonePtr(p.Contact.Phone)
	cp.Contact.Address = clonePtr(p.Contact.Address)

	cp.Skills = append([]Skill(nil), p.Skills...)
	cp.SocialLinks = append([]SocialLink(nil), p.SocialLinks...)

	cp.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		cp.Projects[i] = *pr.CloneProject()
	}
	cp.Experiences = append([]Experience(nil), p.Experiences...)
	cp.Education = append([]Education(nil), p.Education...)
	return &cp
}

func (pr *Project) CloneProject() *Project {
	cp := *pr
	cp.Image = clonePtr(pr.Image)
	cp.Link = clonePtr(pr.Link)
	cp.Tags = append([]string(nil), pr.Tags...)
	return &cp
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
