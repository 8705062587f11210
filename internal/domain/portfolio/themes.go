package portfolio

type Theme struct {
	ID          ThemeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	// Background is the CSS background treatment the preview and the
	// exported document apply for this theme.
	Background string `json:"-"`
}

var themeCatalog = []Theme{
	{
		ID:          ThemeMinimal,
		Name:        "Minimal",
		Description: "Clean, minimalist design with focus on content",
		Background:  "#ffffff",
	},
	{
		ID:          ThemeCreative,
		Name:        "Creative",
		Description: "Bold and colorful design with animations",
		Background:  "linear-gradient(135deg, #faf5ff 0%, #eef2ff 100%)",
	},
	{
		ID:          ThemeProfessional,
		Name:        "Professional",
		Description: "Elegant and structured design ideal for job applications",
		Background:  "#f9fafb",
	},
}

func Themes() []Theme {
	out := make([]Theme, len(themeCatalog))
	copy(out, themeCatalog)
	return out
}

// ThemeByID resolves a theme, falling back to minimal for anything
// unrecognized. Rendering never fails on a bad theme id.
func ThemeByID(id ThemeID) Theme {
	for _, t := range themeCatalog {
		if t.ID == id {
			return t
		}
	}
	return themeCatalog[0]
}
