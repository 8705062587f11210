package document

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/khoahotran/portfolio-crafter/internal/domain/portfolio"
)

// HTMLOptions tunes the one intentional difference between the two export
// paths: the plain document omits empty sections entirely, the paged
// document shows an explicit placeholder instead.
type HTMLOptions struct {
	StylesheetURL     string
	EmptyPlaceholders bool
}

// Filename derives the download name from the portfolio's name field:
// lower-cased, whitespace collapsed to single hyphens, "-portfolio"
// appended. An empty name falls back to plain "portfolio".
func Filename(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return "portfolio"
	}
	return strings.Join(fields, "-") + "-portfolio"
}

type documentData struct {
	Name          string
	Title         string
	Bio           string
	Initial       string
	Avatar        *string
	Background    template.CSS
	FontSize      string
	SectionPad    string
	Skills        []portfolio.Skill
	Projects      []portfolio.Project
	SocialLinks   []portfolio.SocialLink
	Contact       portfolio.Contact
	Year          int
	Placeholders  bool
	StylesheetURL string
}

// RenderHTML serializes the portfolio into a standalone document. It is
// pure and total: every optional field renders as an empty or fallback
// value, never an error. The only error source is template execution
// itself, which indicates a programming bug.
func RenderHTML(p *portfolio.Portfolio, s *portfolio.Settings, opts HTMLOptions) (string, error) {
	theme := portfolio.ThemeByID(s.Theme)

	data := documentData{
		Name:          p.Name,
		Title:         p.Title,
		Bio:           p.Bio,
		Initial:       initial(p.Name),
		Avatar:        p.Avatar,
		Background:    template.CSS("background: " + theme.Background),
		FontSize:      fontSizePx(s.FontSize),
		SectionPad:    sectionPad(s.Spacing),
		Skills:        p.Skills,
		Projects:      p.Projects,
		SocialLinks:   p.SocialLinks,
		Contact:       p.Contact,
		Year:          time.Now().Year(),
		Placeholders:  opts.EmptyPlaceholders,
		StylesheetURL: opts.StylesheetURL,
	}

	var sb strings.Builder
	if err := documentTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render portfolio document: %w", err)
	}
	return sb.String(), nil
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

func fontSizePx(fs portfolio.FontSize) string {
	switch fs {
	case portfolio.FontSmall:
		return "14px"
	case portfolio.FontLarge:
		return "18px"
	default:
		return "16px"
	}
}

func sectionPad(sp portfolio.Spacing) string {
	switch sp {
	case portfolio.SpacingCompact:
		return "1rem"
	case portfolio.SpacingSpacious:
		return "3rem"
	default:
		return "2rem"
	}
}

var documentTmpl = template.Must(template.New("portfolio").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .Name}}{{.Name}}{{else}}Portfolio{{end}}</title>
<link rel="stylesheet" href="{{.StylesheetURL}}">
<style>
  body { font-size: {{.FontSize}}; margin: 0; }
  .page { {{.Background}}; min-height: 100vh; }
  section, header.hero, footer { padding: {{.SectionPad}} 2rem; max-width: 56rem; margin: 0 auto; }
  .avatar { width: 8rem; height: 8rem; border-radius: 50%; object-fit: cover; }
  .avatar-fallback { width: 8rem; height: 8rem; border-radius: 50%; background: rgba(0,0,0,0.06);
    display: flex; align-items: center; justify-content: center; font-size: 2.5rem; font-weight: 700; }
  .bar { background: rgba(0,0,0,0.08); border-radius: 4px; height: 8px; }
  .bar-value { background: #111827; border-radius: 4px; height: 8px; }
  .tag { display: inline-block; background: rgba(0,0,0,0.05); border-radius: 6px;
    padding: 2px 8px; font-size: 0.75em; margin-right: 4px; }
  .project { border: 1px solid rgba(0,0,0,0.08); border-radius: 12px; padding: 1.5rem; margin-bottom: 1rem; }
  footer { text-align: center; font-size: 0.85em; opacity: 0.6; }
</style>
</head>
<body>
<div class="page">
<header class="hero">
  {{if .Avatar}}<img class="avatar" src="{{.Avatar}}" alt="{{.Name}}">{{else}}<div class="avatar-fallback">{{.Initial}}</div>{{end}}
  <h1>{{if .Name}}{{.Name}}{{else}}Your Name{{end}}</h1>
  <p>{{if .Title}}{{.Title}}{{else}}Your Title{{end}}</p>
  {{if .SocialLinks}}<nav>
  {{range .SocialLinks}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Platform}}</a>
  {{end}}</nav>{{end}}
</header>
<section id="about">
  <h2>About Me</h2>
  <p>{{.Bio}}</p>
  <p>
    {{if .Contact.Email}}<a href="mailto:{{.Contact.Email}}">{{.Contact.Email}}</a>{{end}}
    {{if .Contact.Phone}} &middot; <a href="tel:{{.Contact.Phone}}">{{.Contact.Phone}}</a>{{end}}
    {{if .Contact.Address}} &middot; <span>{{.Contact.Address}}</span>{{end}}
  </p>
</section>
{{if .Skills}}<section id="skills">
  <h2>Skills</h2>
  {{range .Skills}}<div>
    <span>{{.Name}}</span> <span>{{.Level}}%</span>
    <div class="bar"><div class="bar-value" style="width: {{.Level}}%"></div></div>
  </div>
  {{end}}</section>
{{else if .Placeholders}}<section id="skills"><h2>Skills</h2><p>No skills yet</p></section>
{{end}}{{if .Projects}}<section id="projects">
  <h2>Projects</h2>
  {{range .Projects}}<div class="project">
    <h3>{{.Title}}</h3>
    <p>{{.Description}}</p>
    {{range .Tags}}<span class="tag">{{.}}</span>{{end}}
    {{if .Link}}<p><a href="{{.Link}}" target="_blank" rel="noopener noreferrer">View Project</a></p>{{end}}
  </div>
  {{end}}</section>
{{else if .Placeholders}}<section id="projects"><h2>Projects</h2><p>No projects yet</p></section>
{{end}}<footer>
  <p>&copy; {{.Year}} {{.Name}}. Created with Portfolio Crafter.</p>
</footer>
</div>
</body>
</html>
`))
