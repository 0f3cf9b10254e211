package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexacrm/landing/pkg/models"
)

const ProductName = "NexaCRM"

// PageConfig carries the head metadata of a page
type PageConfig struct {
	Title       string
	Description string
}

// PageData is everything the landing page renders that is not fixed copy
type PageData struct {
	SupportEmail       string
	FailureMessage     string
	NavScrollThreshold int
	RevealThreshold    float64
	ModalCloseDelayMs  int64

	Waitlist models.FormView
	Contact  models.FormView
	// WaitlistOpen renders the modal already open, used when a plain form post is answered with the page
	WaitlistOpen bool
}

func Layout(config PageConfig, data PageData, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = fmt.Sprintf("%s - The CRM Built for Growing Teams", ProductName)
	}

	if config.Description == "" {
		config.Description = "Manage clients, track sales, and scale operations seamlessly."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("/static/css/styles.css")),
				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Class("min-h-screen bg-white"),
				g.Attr("data-reveal-threshold", strconv.FormatFloat(data.RevealThreshold, 'f', -1, 64)),
				g.Attr("data-nav-threshold", strconv.Itoa(data.NavScrollThreshold)),
				g.Attr("data-failure-message", data.FailureMessage),
				g.Group(content),

				Script(Type("module"), Src("/static/js/reveal.js")),
				Script(Type("module"), Src("/static/js/navbar.js")),
				Script(Type("module"), Src("/static/js/forms.js")),
			),
		),
	})
}

// LandingPage composes every section in its fixed order
func LandingPage(data PageData) g.Node {
	return Layout(
		PageConfig{},
		data,
		Navbar(data.NavScrollThreshold),
		Main(
			Hero(),
			Features(),
			Demo(),
			Pricing(),
			Resources(),
			About(),
			Contact(data.Contact, data.SupportEmail),
		),
		PageFooter(),
		WaitlistModal(data.Waitlist, data.WaitlistOpen, data.ModalCloseDelayMs),
	)
}
