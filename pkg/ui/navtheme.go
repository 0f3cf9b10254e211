package ui

// NavTheme is the visual theme of the fixed navigation bar
type NavTheme string

const (
	NavTransparent NavTheme = "transparent"
	NavOpaque      NavTheme = "opaque"

	DefaultNavScrollThreshold = 20
)

// NavThemeFor picks the theme for a vertical scroll offset. The bar turns
// opaque strictly past the threshold.
func NavThemeFor(offset, threshold int) NavTheme {
	if offset > threshold {
		return NavOpaque
	}
	return NavTransparent
}

// Classes returns the CSS classes the bar carries in this theme
func (t NavTheme) Classes() string {
	if t == NavOpaque {
		return "bg-white/90 backdrop-blur-lg border-b border-gray-200 shadow-sm"
	}
	return "bg-transparent"
}
