// Package styles provides shared lipgloss v2 styles for the traceview TUI.
package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color

	// Attribution holds the cyclic backgrounds painted behind attributed
	// line spans in the code pane, indexed by range position mod len.
	Attribution []color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
		Attribution: []color.Color{
			lipgloss.Color("#1f2a44"),
			lipgloss.Color("#1e3a32"),
			lipgloss.Color("#3a2e26"),
			lipgloss.Color("#36243a"),
			lipgloss.Color("#1e3440"),
			lipgloss.Color("#3a2430"),
		},
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
		Attribution: []color.Color{
			lipgloss.Color("#32302f"),
			lipgloss.Color("#34381b"),
			lipgloss.Color("#402120"),
			lipgloss.Color("#3c2f3c"),
			lipgloss.Color("#1d3b3b"),
			lipgloss.Color("#43302b"),
		},
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// Text styles shared across panes.
	TextPrimaryStyle    lipgloss.Style
	TextSecondaryStyle  lipgloss.Style
	TextForegroundStyle lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextSuccessStyle    lipgloss.Style
	TextWarningStyle    lipgloss.Style
	TextErrorStyle      lipgloss.Style

	// Pane chrome.
	PaneFocusedBorderStyle lipgloss.Style
	PaneBlurredBorderStyle lipgloss.Style
	PaneTitleStyle         lipgloss.Style
	StatusBarStyle         lipgloss.Style
	HelpStyle              lipgloss.Style

	// Code pane.
	LineNumberStyle      lipgloss.Style
	GutterSeparatorStyle lipgloss.Style
	CursorLineStyle      lipgloss.Style
	ActiveLineStyle      lipgloss.Style
	PlaceholderStyle     lipgloss.Style

	// Transcript pane.
	MsgRoleUserStyle      lipgloss.Style
	MsgRoleAssistantStyle lipgloss.Style
	MsgRoleOtherStyle     lipgloss.Style
	MsgTimeStyle          lipgloss.Style
	MsgHighlightStyle     lipgloss.Style
	MsgDividerStyle       lipgloss.Style
)

// AttributionStyles returns one background style per palette slot, in order.
func AttributionStyles() []lipgloss.Style {
	out := make([]lipgloss.Style, len(CurrentPalette.Attribution))
	for i, c := range CurrentPalette.Attribution {
		out[i] = lipgloss.NewStyle().Background(c)
	}
	return out
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	PaneFocusedBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)
	PaneBlurredBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface)
	PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	LineNumberStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	GutterSeparatorStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	CursorLineStyle = lipgloss.NewStyle().Background(ColorSurface)
	ActiveLineStyle = lipgloss.NewStyle().Background(ColorSurface).Bold(true)
	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	MsgRoleUserStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	MsgRoleAssistantStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	MsgRoleOtherStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	MsgTimeStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MsgHighlightStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorWarning).
		PaddingLeft(1)
	MsgDividerStyle = lipgloss.NewStyle().Foreground(ColorSurface)
}

func init() {
	// Ensure styles are usable before any explicit SetTheme call.
	SetTheme(themes[DefaultTheme])
}
