//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// ThemeColors is the fixed set of named colors a palette provides. The
// layout writes each as a CSS custom property on :root.
type ThemeColors struct {
	Primary       string
	PrimaryDark   string
	PrimaryLight  string
	Secondary     string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
	SidebarBg     string
	SidebarText   string
	SidebarActive string
	SidebarHover  string
}

// Theme is a selectable palette.
type Theme struct {
	ID     string
	Label  string
	Colors ThemeColors
}

// DefaultThemeID is applied to sessions that have not picked a palette.
const DefaultThemeID = "light"

var themes = []Theme{
	{
		ID:    "light",
		Label: "Light",
		Colors: ThemeColors{
			Primary: "#0ea5e9", PrimaryDark: "#0284c7", PrimaryLight: "#38bdf8",
			Secondary: "#06b6d4", Background: "#f8fafc", Surface: "#ffffff",
			Text: "#1e293b", TextSecondary: "#64748b", Border: "#e2e8f0",
			SidebarBg: "#ffffff", SidebarText: "#475569", SidebarActive: "#0ea5e9", SidebarHover: "#f1f5f9",
		},
	},
	{
		ID:    "dark",
		Label: "Dark",
		Colors: ThemeColors{
			Primary: "#3b82f6", PrimaryDark: "#2563eb", PrimaryLight: "#60a5fa",
			Secondary: "#8b5cf6", Background: "#0f172a", Surface: "#1e293b",
			Text: "#f1f5f9", TextSecondary: "#cbd5e1", Border: "#334155",
			SidebarBg: "#1e293b", SidebarText: "#cbd5e1", SidebarActive: "#3b82f6", SidebarHover: "#334155",
		},
	},
	{
		ID:    "blue",
		Label: "Ocean Blue",
		Colors: ThemeColors{
			Primary: "#3b82f6", PrimaryDark: "#2563eb", PrimaryLight: "#60a5fa",
			Secondary: "#06b6d4", Background: "#eff6ff", Surface: "#ffffff",
			Text: "#1e3a8a", TextSecondary: "#3b82f6", Border: "#bfdbfe",
			SidebarBg: "#1e3a8a", SidebarText: "#dbeafe", SidebarActive: "#3b82f6", SidebarHover: "#1e40af",
		},
	},
	{
		ID:    "green",
		Label: "Forest Green",
		Colors: ThemeColors{
			Primary: "#10b981", PrimaryDark: "#059669", PrimaryLight: "#34d399",
			Secondary: "#14b8a6", Background: "#f0fdf4", Surface: "#ffffff",
			Text: "#065f46", TextSecondary: "#10b981", Border: "#bbf7d0",
			SidebarBg: "#065f46", SidebarText: "#d1fae5", SidebarActive: "#10b981", SidebarHover: "#047857",
		},
	},
	{
		ID:    "purple",
		Label: "Royal Purple",
		Colors: ThemeColors{
			Primary: "#8b5cf6", PrimaryDark: "#7c3aed", PrimaryLight: "#a78bfa",
			Secondary: "#ec4899", Background: "#faf5ff", Surface: "#ffffff",
			Text: "#5b21b6", TextSecondary: "#8b5cf6", Border: "#e9d5ff",
			SidebarBg: "#5b21b6", SidebarText: "#e9d5ff", SidebarActive: "#8b5cf6", SidebarHover: "#6d28d9",
		},
	},
	{
		ID:    "orange",
		Label: "Sunset Orange",
		Colors: ThemeColors{
			Primary: "#f59e0b", PrimaryDark: "#d97706", PrimaryLight: "#fbbf24",
			Secondary: "#ef4444", Background: "#fffbeb", Surface: "#ffffff",
			Text: "#92400e", TextSecondary: "#f59e0b", Border: "#fde68a",
			SidebarBg: "#92400e", SidebarText: "#fef3c7", SidebarActive: "#f59e0b", SidebarHover: "#b45309",
		},
	},
}

// Themes returns the selectable palettes in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ThemeByID looks up a palette; ok is false for unknown ids.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// ResolveTheme returns the palette for id, falling back to the default
// when id is empty or unknown.
func ResolveTheme(id string) Theme {
	if t, ok := ThemeByID(id); ok {
		return t
	}
	t, _ := ThemeByID(DefaultThemeID)
	return t
}
