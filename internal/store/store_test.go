package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
)

func strPtr(s string) *string { return &s }

func TestAddRemoveSkillLengthArithmetic(t *testing.T) {
	st := New()
	base := len(st.Snapshot().Portfolio.Skills)

	st.AddSkill(portfolio.Skill{Name: "Go", Level: 80})
	st.AddSkill(portfolio.Skill{Name: "Rust", Level: 40})
	st.AddSkill(portfolio.Skill{Name: "Zig", Level: 20})
	st.RemoveSkill(base) // removes "Go"

	snap := st.Snapshot()
	assert.Len(t, snap.Portfolio.Skills, base+2)
	assert.Equal(t, "Rust", snap.Portfolio.Skills[base].Name)
	assert.Equal(t, "Zig", snap.Portfolio.Skills[base+1].Name)
}

func TestSkillLevelClamped(t *testing.T) {
	st := New()
	snap := st.AddSkill(portfolio.Skill{Name: "Go", Level: 250})
	skills := snap.Portfolio.Skills
	assert.Equal(t, 100, skills[len(skills)-1].Level)

	snap = st.AddSkill(portfolio.Skill{Name: "Cobol", Level: -5})
	skills = snap.Portfolio.Skills
	assert.Equal(t, 0, skills[len(skills)-1].Level)
}

func TestOutOfRangeIndexMutationsAreNoOps(t *testing.T) {
	st := New()
	before := st.Snapshot()

	st.UpdateSkill(-1, portfolio.Skill{Name: "x"})
	st.UpdateSkill(999, portfolio.Skill{Name: "x"})
	st.RemoveSkill(-1)
	st.RemoveSkill(999)
	st.UpdateSocialLink(999, portfolio.SocialLink{Platform: "x"})
	st.RemoveSocialLink(-1)

	after := st.Snapshot()
	assert.Equal(t, before.Portfolio, after.Portfolio)
}

func TestUpdateProjectMergesOnlyTarget(t *testing.T) {
	st := New()
	p1, _ := st.AddProject(ProjectDraft{Title: "One", Description: "first"})
	p2, _ := st.AddProject(ProjectDraft{Title: "Two", Description: "second"})

	before := st.Snapshot()
	st.UpdateProject(p1.ID, ProjectPatch{Title: strPtr("One v2")})
	after := st.Snapshot()

	var got1, got2 *portfolio.Project
	for i := range after.Portfolio.Projects {
		switch after.Portfolio.Projects[i].ID {
		case p1.ID:
			got1 = &after.Portfolio.Projects[i]
		case p2.ID:
			got2 = &after.Portfolio.Projects[i]
		}
	}
	require.NotNil(t, got1)
	require.NotNil(t, got2)

	assert.Equal(t, "One v2", got1.Title)
	assert.Equal(t, "first", got1.Description, "unpatched fields keep their values")

	// Every other project must be byte-for-byte unchanged.
	for i, p := range before.Portfolio.Projects {
		if p.ID == p1.ID {
			continue
		}
		assert.Equal(t, p, after.Portfolio.Projects[i])
	}
	_ = got2
}

func TestUpdateProjectUnknownIDIsNoOp(t *testing.T) {
	st := New()
	before := st.Snapshot()
	st.UpdateProject("no-such-id", ProjectPatch{Title: strPtr("ghost")})
	assert.Equal(t, before.Portfolio, st.Snapshot().Portfolio)
}

func TestRemoveProjectIdempotent(t *testing.T) {
	st := New()
	p, _ := st.AddProject(ProjectDraft{Title: "Doomed", Description: "gone soon"})

	first := st.RemoveProject(p.ID)
	second := st.RemoveProject(p.ID)

	assert.Equal(t, first.Portfolio.Projects, second.Portfolio.Projects)
	for _, pr := range second.Portfolio.Projects {
		assert.NotEqual(t, p.ID, pr.ID)
	}
}

func TestProjectIDsGeneratedCentrally(t *testing.T) {
	st := New()
	seen := make(map[string]bool)
	for range 50 {
		p, _ := st.AddProject(ProjectDraft{Title: "T", Description: "D"})
		assert.False(t, seen[p.ID], "duplicate generated id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestAddProjectDedupesTagsOnInsert(t *testing.T) {
	st := New()
	p, _ := st.AddProject(ProjectDraft{
		Title:       "Demo",
		Description: "Test project",
		Tags:        []string{"React", "Go", "React", "react"},
	})
	// Case-sensitive exact-match dedup: "react" stays.
	assert.Equal(t, []string{"React", "Go", "react"}, p.Tags)
}

func TestAddProjectTagExactMatchDedup(t *testing.T) {
	st := New()
	p, _ := st.AddProject(ProjectDraft{Title: "Demo", Description: "Test project"})

	st.AddProjectTag(p.ID, "React")
	snap := st.AddProjectTag(p.ID, "React")

	for _, pr := range snap.Portfolio.Projects {
		if pr.ID == p.ID {
			assert.Equal(t, []string{"React"}, pr.Tags)
		}
	}
}

func TestRemoveProjectTag(t *testing.T) {
	st := New()
	p, _ := st.AddProject(ProjectDraft{Title: "Demo", Description: "d", Tags: []string{"a", "b"}})
	snap := st.RemoveProjectTag(p.ID, "a")
	for _, pr := range snap.Portfolio.Projects {
		if pr.ID == p.ID {
			assert.Equal(t, []string{"b"}, pr.Tags)
		}
	}
}

func TestSetSocialLinkFindOrAppend(t *testing.T) {
	st := New()
	st.Reset()
	// Defaults already hold a GitHub entry; count appends for a platform
	// that does not exist yet.
	snap := st.SetSocialLink("Mastodon", "https://hachyderm.io/@jane")

	count := 0
	for _, l := range snap.Portfolio.SocialLinks {
		if l.Platform == "Mastodon" {
			count++
			assert.Equal(t, "https://hachyderm.io/@jane", l.URL)
		}
	}
	assert.Equal(t, 1, count, "first edit appends exactly one entry")

	snap = st.SetSocialLink("Mastodon", "https://hachyderm.io/@john")
	count = 0
	for _, l := range snap.Portfolio.SocialLinks {
		if l.Platform == "Mastodon" {
			count++
			assert.Equal(t, "https://hachyderm.io/@john", l.URL)
		}
	}
	assert.Equal(t, 1, count, "second edit mutates the same entry")
}

func TestSetSocialLinkFirstMatchWins(t *testing.T) {
	st := New()
	st.AddSocialLink(portfolio.SocialLink{Platform: "Blog", URL: "https://a"})
	st.AddSocialLink(portfolio.SocialLink{Platform: "Blog", URL: "https://b"})

	snap := st.SetSocialLink("Blog", "https://c")

	var urls []string
	for _, l := range snap.Portfolio.SocialLinks {
		if l.Platform == "Blog" {
			urls = append(urls, l.URL)
		}
	}
	assert.Equal(t, []string{"https://c", "https://b"}, urls)
}

func TestResetRestoresDefaults(t *testing.T) {
	st := New()
	st.UpdateProfile(ProfilePatch{Name: strPtr("Jane Smith"), Bio: strPtr("")})
	st.AddSkill(portfolio.Skill{Name: "Go", Level: 90})
	st.AddProject(ProjectDraft{Title: "X", Description: "Y"})
	theme := portfolio.ThemeCreative
	st.UpdateSettings(SettingsPatch{Theme: &theme})

	snap := st.Reset()
	assert.Equal(t, portfolio.DefaultPortfolio(), snap.Portfolio)
	assert.Equal(t, portfolio.DefaultSettings(), snap.Settings)
}

func TestUpdateProfileAllowsEmptyStrings(t *testing.T) {
	st := New()
	snap := st.UpdateProfile(ProfilePatch{Name: strPtr(""), Title: strPtr("")})
	assert.Equal(t, "", snap.Portfolio.Name)
	assert.Equal(t, "", snap.Portfolio.Title)
	// Untouched fields survive the shallow merge.
	assert.Equal(t, portfolio.DefaultPortfolio().Bio, snap.Portfolio.Bio)
}

func TestUpdateProfileClearsOptionalFields(t *testing.T) {
	st := New()
	st.UpdateProfile(ProfilePatch{
		Avatar:  strPtr("https://img.example.com/me.png"),
		Phone:   strPtr("+1 555 0100"),
		Address: strPtr("Berlin"),
	})

	snap := st.UpdateProfile(ProfilePatch{ClearAvatar: true, ClearPhone: true, ClearAddress: true})
	assert.Nil(t, snap.Portfolio.Avatar)
	assert.Nil(t, snap.Portfolio.Contact.Phone)
	assert.Nil(t, snap.Portfolio.Contact.Address)

	// Clear wins over a value carried in the same patch.
	snap = st.UpdateProfile(ProfilePatch{Avatar: strPtr("https://x"), ClearAvatar: true})
	assert.Nil(t, snap.Portfolio.Avatar)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	st := New()
	snap := st.Snapshot()
	snap.Portfolio.Name = "tampered"
	snap.Portfolio.Skills[0].Name = "tampered"

	fresh := st.Snapshot()
	assert.Equal(t, portfolio.DefaultPortfolio().Name, fresh.Portfolio.Name)
	assert.Equal(t, portfolio.DefaultPortfolio().Skills[0].Name, fresh.Portfolio.Skills[0].Name)
}

func TestRevisionBumpsPerMutation(t *testing.T) {
	st := New()
	r0 := st.Snapshot().Revision
	st.AddSkill(portfolio.Skill{Name: "Go", Level: 50})
	r1 := st.Snapshot().Revision
	st.RemoveSkill(0)
	r2 := st.Snapshot().Revision

	assert.Equal(t, r0+1, r1)
	assert.Equal(t, r1+1, r2)
}

func TestSubscribeReceivesSnapshotPerMutation(t *testing.T) {
	st := New()
	ch, cancel := st.Subscribe(4)
	defer cancel()

	st.UpdateProfile(ProfilePatch{Name: strPtr("Jane Smith")})
	snap := <-ch
	assert.Equal(t, "Jane Smith", snap.Portfolio.Name)

	st.AddSkill(portfolio.Skill{Name: "Go", Level: 70})
	snap = <-ch
	skills := snap.Portfolio.Skills
	assert.Equal(t, "Go", skills[len(skills)-1].Name)
}

func TestSlowSubscriberConvergesOnNewestState(t *testing.T) {
	st := New()
	ch, cancel := st.Subscribe(1)
	defer cancel()

	for i := 0; i < 10; i++ {
		st.UpdateProfile(ProfilePatch{Name: strPtr("v" + string(rune('0'+i)))})
	}

	// Buffer of one: whatever is pending must be the latest mutation.
	snap := <-ch
	assert.Equal(t, "v9", snap.Portfolio.Name)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	st := New()
	ch, cancel := st.Subscribe(1)
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Mutating after unsubscribe must not panic.
	st.AddSkill(portfolio.Skill{Name: "Go", Level: 10})
}

func TestCloseEndsAllSubscriptions(t *testing.T) {
	st := New()
	ch1, cancel1 := st.Subscribe(1)
	ch2, _ := st.Subscribe(1)

	st.Close()

	_, open := <-ch1
	assert.False(t, open)
	_, open = <-ch2
	assert.False(t, open)

	// Unsubscribing after Close must not double-close, and mutations on a
	// closed store still work; only the watchers are gone.
	cancel1()
	st.AddSkill(portfolio.Skill{Name: "Go", Level: 10})
}

func TestTryBeginExportBlocksReentrancy(t *testing.T) {
	st := New()
	require.True(t, st.TryBeginExport())
	assert.False(t, st.TryBeginExport())
	st.EndExport()
	assert.True(t, st.TryBeginExport())
}
