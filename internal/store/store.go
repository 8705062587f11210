package store

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
)

// Snapshot is an immutable view of the store at one revision. Consumers
// detect change by comparing Revision; the contained values are deep copies
// and never alias live state.
type Snapshot struct {
	Portfolio *portfolio.Portfolio
	Settings  *portfolio.Settings
	Revision  uint64
}

// Store owns one Portfolio/Settings pair for one editing session. Every
// mutation is synchronous and total: bad indices and unknown ids are silent
// no-ops, never errors. The mutex stands in for the single-threaded event
// loop the semantics were designed for - one mutation completes fully
// before the next is applied.
type Store struct {
	mu        sync.Mutex
	portfolio *portfolio.Portfolio
	settings  *portfolio.Settings
	revision  uint64

	subs    map[int]chan Snapshot
	nextSub int

	// exporting guards the paged export against re-entrant triggers.
	exporting atomic.Bool
}

// TryBeginExport claims the session's single export slot. It returns false
// while another paged export is still running.
func (s *Store) TryBeginExport() bool {
	return s.exporting.CompareAndSwap(false, true)
}

func (s *Store) EndExport() {
	s.exporting.Store(false)
}

func New() *Store {
	return &Store{
		portfolio: portfolio.DefaultPortfolio(),
		settings:  portfolio.DefaultSettings(),
		subs:      make(map[int]chan Snapshot),
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	settings := *s.settings
	return Snapshot{
		Portfolio: s.portfolio.Clone(),
		Settings:  &settings,
		Revision:  s.revision,
	}
}

// Subscribe registers a listener that receives a snapshot after every
// mutation. A subscriber that falls behind loses intermediate snapshots;
// the newest one always lands. The returned func unsubscribes.
func (s *Store) Subscribe(buffer int) (<-chan Snapshot, func()) {
	if buffer < 1 {
		buffer = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, buffer)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close terminates every live subscription. The registry calls it when it
// evicts an expired session so watchers see end-of-stream instead of
// idling on a store nothing can mutate anymore.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// mutate runs fn on the live state under the lock, bumps the revision and
// fans the fresh snapshot out to subscribers.
func (s *Store) mutate(fn func()) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn()
	s.revision++
	snap := s.snapshotLocked()

	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Full buffer: evict the oldest pending snapshot so the
			// subscriber converges on current state.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
	return snap
}

// ProfilePatch carries the fields of updateProfile; nil means unchanged.
// Contact fields are merged field-wise like the rest. The Clear flags put
// an optional field back to absent; a Clear wins over a value set in the
// same patch.
type ProfilePatch struct {
	Name    *string
	Title   *string
	Bio     *string
	Avatar  *string
	Email   *string
	Phone   *string
	Address *string

	ClearAvatar  bool
	ClearPhone   bool
	ClearAddress bool
}

func (s *Store) UpdateProfile(patch ProfilePatch) Snapshot {
	return s.mutate(func() {
		p := s.portfolio
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Bio != nil {
			p.Bio = *patch.Bio
		}
		if patch.Avatar != nil {
			p.Avatar = patch.Avatar
		}
		if patch.Email != nil {
			p.Contact.Email = *patch.Email
		}
		if patch.Phone != nil {
			p.Contact.Phone = patch.Phone
		}
		if patch.Address != nil {
			p.Contact.Address = patch.Address
		}
		if patch.ClearAvatar {
			p.Avatar = nil
		}
		if patch.ClearPhone {
			p.Contact.Phone = nil
		}
		if patch.ClearAddress {
			p.Contact.Address = nil
		}
	})
}

type SettingsPatch struct {
	Theme     *portfolio.ThemeID
	FontSize  *portfolio.FontSize
	Spacing   *portfolio.Spacing
	Animation *bool
}

func (s *Store) UpdateSettings(patch SettingsPatch) Snapshot {
	return s.mutate(func() {
		if patch.Theme != nil {
			s.settings.Theme = *patch.Theme
		}
		if patch.FontSize != nil {
			s.settings.FontSize = *patch.FontSize
		}
		if patch.Spacing != nil {
			s.settings.Spacing = *patch.Spacing
		}
		if patch.Animation != nil {
			s.settings.Animation = *patch.Animation
		}
	})
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

func (s *Store) AddSkill(skill portfolio.Skill) Snapshot {
	skill.Level = clampLevel(skill.Level)
	return s.mutate(func() {
		s.portfolio.Skills = append(s.portfolio.Skills, skill)
	})
}

func (s *Store) UpdateSkill(index int, skill portfolio.Skill) Snapshot {
	skill.Level = clampLevel(skill.Level)
	return s.mutate(func() {
		if index < 0 || index >= len(s.portfolio.Skills) {
			return
		}
		s.portfolio.Skills[index] = skill
	})
}

func (s *Store) RemoveSkill(index int) Snapshot {
	return s.mutate(func() {
		skills := s.portfolio.Skills
		if index < 0 || index >= len(skills) {
			return
		}
		s.portfolio.Skills = append(skills[:index:index], skills[index+1:]...)
	})
}

func (s *Store) AddSocialLink(link portfolio.SocialLink) Snapshot {
	return s.mutate(func() {
		s.portfolio.SocialLinks = append(s.portfolio.SocialLinks, link)
	})
}

func (s *Store) UpdateSocialLink(index int, link portfolio.SocialLink) Snapshot {
	return s.mutate(func() {
		if index < 0 || index >= len(s.portfolio.SocialLinks) {
			return
		}
		s.portfolio.SocialLinks[index] = link
	})
}

func (s *Store) RemoveSocialLink(index int) Snapshot {
	return s.mutate(func() {
		links := s.portfolio.SocialLinks
		if index < 0 || index >= len(links) {
			return
		}
		s.portfolio.SocialLinks = append(links[:index:index], links[index+1:]...)
	})
}

// SetSocialLink is the single-valued form field contract: replace the URL
// of the first entry matching platform, or append a new entry when none
// exists. Duplicate platform entries created elsewhere keep only their
// first occurrence editable here.
func (s *Store) SetSocialLink(platform, url string) Snapshot {
	return s.mutate(func() {
		for i, l := range s.portfolio.SocialLinks {
			if l.Platform == platform {
				s.portfolio.SocialLinks[i].URL = url
				return
			}
		}
		s.portfolio.SocialLinks = append(s.portfolio.SocialLinks,
			portfolio.SocialLink{Platform: platform, URL: url})
	})
}

// ProjectDraft is a project before it has an identity. The store assigns
// the id itself; caller-supplied ids were a collision hazard.
type ProjectDraft struct {
	Title       string
	Description string
	Image       *string
	Tags        []string
	Link        *string
}

func (s *Store) AddProject(draft ProjectDraft) (portfolio.Project, Snapshot) {
	p := portfolio.Project{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Image:       draft.Image,
		Tags:        dedupeTags(draft.Tags),
		Link:        draft.Link,
	}
	snap := s.mutate(func() {
		s.portfolio.Projects = append(s.portfolio.Projects, *p.CloneProject())
	})
	return p, snap
}

type ProjectPatch struct {
	Title       *string
	Description *string
	Image       *string
	Tags        *[]string
	Link        *string
}

func (s *Store) UpdateProject(id string, patch ProjectPatch) Snapshot {
	return s.mutate(func() {
		for i := range s.portfolio.Projects {
			p := &s.portfolio.Projects[i]
			if p.ID != id {
				continue
			}
			if patch.Title != nil {
				p.Title = *patch.Title
			}
			if patch.Description != nil {
				p.Description = *patch.Description
			}
			if patch.Image != nil {
				p.Image = patch.Image
			}
			if patch.Tags != nil {
				p.Tags = dedupeTags(*patch.Tags)
			}
			if patch.Link != nil {
				p.Link = patch.Link
			}
			return
		}
	})
}

func (s *Store) RemoveProject(id string) Snapshot {
	return s.mutate(func() {
		kept := s.portfolio.Projects[:0]
		for _, p := range s.portfolio.Projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		s.portfolio.Projects = kept
	})
}

// AddProjectTag appends tag to the project's tag list unless an exact
// (case-sensitive) match is already present.
func (s *Store) AddProjectTag(id, tag string) Snapshot {
	return s.mutate(func() {
		for i := range s.portfolio.Projects {
			p := &s.portfolio.Projects[i]
			if p.ID != id {
				continue
			}
			for _, t := range p.Tags {
				if t == tag {
					return
				}
			}
			p.Tags = append(p.Tags, tag)
			return
		}
	})
}

func (s *Store) RemoveProjectTag(id, tag string) Snapshot {
	return s.mutate(func() {
		for i := range s.portfolio.Projects {
			p := &s.portfolio.Projects[i]
			if p.ID != id {
				continue
			}
			kept := p.Tags[:0]
			for _, t := range p.Tags {
				if t != tag {
					kept = append(kept, t)
				}
			}
			p.Tags = kept
			return
		}
	})
}

type ExperienceDraft struct {
	Title         string
	Company       string
	Location      string
	StartDate     string
	EndDate       string
	Description   string
	IsCurrentRole bool
}

func (s *Store) AddExperience(draft ExperienceDraft) (portfolio.Experience, Snapshot) {
	e := portfolio.Experience{
		ID:            uuid.NewString(),
		Title:         draft.Title,
		Company:       draft.Company,
		Location:      draft.Location,
		StartDate:     draft.StartDate,
		EndDate:       draft.EndDate,
		Description:   draft.Description,
		IsCurrentRole: draft.IsCurrentRole,
	}
	snap := s.mutate(func() {
		s.portfolio.Experiences = append(s.portfolio.Experiences, e)
	})
	return e, snap
}

type ExperiencePatch struct {
	Title         *string
	Company       *string
	Location      *string
	StartDate     *string
	EndDate       *string
	Description   *string
	IsCurrentRole *bool
}

func (s *Store) UpdateExperience(id string, patch ExperiencePatch) Snapshot {
	return s.mutate(func() {
		for i := range s.portfolio.Experiences {
			e := &s.portfolio.Experiences[i]
			if e.ID != id {
				continue
			}
			if patch.Title != nil {
				e.Title = *patch.Title
			}
			if patch.Company != nil {
				e.Company = *patch.Company
			}
			if patch.Location != nil {
				e.Location = *patch.Location
			}
			if patch.StartDate != nil {
				e.StartDate = *patch.StartDate
			}
			if patch.EndDate != nil {
				e.EndDate = *patch.EndDate
			}
			if patch.Description != nil {
				e.Description = *patch.Description
			}
			if patch.IsCurrentRole != nil {
				e.IsCurrentRole = *patch.IsCurrentRole
			}
			return
		}
	})
}

func (s *Store) RemoveExperience(id string) Snapshot {
	return s.mutate(func() {
		kept := s.portfolio.Experiences[:0]
		for _, e := range s.portfolio.Experiences {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.portfolio.Experiences = kept
	})
}

type EducationDraft struct {
	Institution string
	Degree      string
	Field       string
	StartDate   string
	EndDate     string
}

func (s *Store) AddEducation(draft EducationDraft) (portfolio.Education, Snapshot) {
	e := portfolio.Education{
		ID:          uuid.NewString(),
		Institution: draft.Institution,
		Degree:      draft.Degree,
		Field:       draft.Field,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
	}
	snap := s.mutate(func() {
		s.portfolio.Education = append(s.portfolio.Education, e)
	})
	return e, snap
}

type EducationPatch struct {
	Institution *string
	Degree      *string
	Field       *string
	StartDate   *string
	EndDate     *string
}

func (s *Store) UpdateEducation(id string, patch EducationPatch) Snapshot {
	return s.mutate(func() {
		for i := range s.portfolio.Education {
			e := &s.portfolio.Education[i]
			if e.ID != id {
				continue
			}
			if patch.Institution != nil {
				e.Institution = *patch.Institution
			}
			if patch.Degree != nil {
				e.Degree = *patch.Degree
			}
			if patch.Field != nil {
				e.Field = *patch.Field
			}
			if patch.StartDate != nil {
				e.StartDate = *patch.StartDate
			}
			if patch.EndDate != nil {
				e.EndDate = *patch.EndDate
			}
			return
		}
	})
}

func (s *Store) RemoveEducation(id string) Snapshot {
	return s.mutate(func() {
		kept := s.portfolio.Education[:0]
		for _, e := range s.portfolio.Education {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.portfolio.Education = kept
	})
}

// Reset restores both portfolio and settings to the defaults.
func (s *Store) Reset() Snapshot {
	return s.mutate(func() {
		s.portfolio = portfolio.DefaultPortfolio()
		s.settings = portfolio.DefaultSettings()
	})
}

func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
