package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold: glitch highlight
	colorSuccess     = lipgloss.Color("#00E676") // Green: stream indicator
	colorMuted       = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray: previews
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorFaint       = lipgloss.Color("#303040") // Near-background: fading rules
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface: footer bg
)

// Selection indicator prepended to the selected writing entry.
const selectionIndicator = "▎"

// Navigation marker shown before the active sidebar entry.
const navMarker = ">> "

// Sidebar styles.
var (
	styleSidebar = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleSiteName = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleTagline = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleNavActive = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleNavNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleLink = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Status line styles.
var (
	styleStatusDot = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorMutedLight)

	styleStatusRule = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Page row styles, keyed by cascade line kind.
var (
	stylePlain = lipgloss.NewStyle().
			Foreground(colorWhite)

	stylePreview = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Italic(true)

	styleRule = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleRuleFading = lipgloss.NewStyle().
			Foreground(colorFaint)

	styleGlitch = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
