package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexacrm/landing/pkg/ui"
)

var menuItems = []string{"Features", "Pricing", "Resources", "About Us", "Demo", "Contact"}

func anchorFor(item string) string {
	return "#" + strings.ReplaceAll(strings.ToLower(item), " ", "-")
}

// Navbar renders in the theme of a page scrolled to the top; navbar.js swaps
// the theme classes as the offset crosses the threshold.
func Navbar(threshold int) g.Node {
	theme := ui.NavThemeFor(0, threshold)

	return Nav(
		ID("navbar"),
		Class("fixed top-0 left-0 right-0 z-50 transition-all duration-300 "+theme.Classes()),
		g.Attr("data-nav-theme", string(theme)),
		g.Attr("data-scroll-threshold", strconv.Itoa(threshold)),
		g.Attr("data-opaque-classes", ui.NavOpaque.Classes()),
		g.Attr("data-transparent-classes", ui.NavTransparent.Classes()),

		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex justify-between items-center h-16"),
				A(
					Href("#"),
					Class("text-2xl font-bold bg-gradient-to-r from-blue-600 to-blue-800 bg-clip-text text-transparent"),
					g.Text(ProductName),
				),
				Div(
					Class("hidden md:flex items-center space-x-8"),
					g.Group(g.Map(menuItems, func(item string) g.Node {
						return A(
							Href(anchorFor(item)),
							Class("text-gray-700 hover:text-blue-600 transition-colors text-sm font-medium"),
							g.Text(item),
						)
					})),
				),
				Div(
					Class("hidden md:block"),
					JoinWaitlistButton("Join Waitlist", "bg-blue-600 hover:bg-blue-700 text-white px-6 py-2 rounded-lg font-medium transition-colors"),
				),
			),
		),
	)
}
