package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexacrm/landing/pkg/models"
	"github.com/nexacrm/landing/pkg/ui"
)

// Reveal marks an element for the scroll entrance animation
func Reveal(classes string) g.Node {
	if classes == "" {
		return Class(ui.RevealMarkerClass + " opacity-0")
	}
	return Class(ui.RevealMarkerClass + " opacity-0 " + classes)
}

func SectionHeading(title, subtitle string) g.Node {
	return Div(
		Reveal("text-center mb-12"),
		H2(Class("text-4xl font-bold text-gray-900 mb-4"), g.Text(title)),
		P(Class("text-xl text-gray-600"), g.Text(subtitle)),
	)
}

// JoinWaitlistButton opens the waitlist modal. The link works without
// JavaScript by asking the server for the page with the modal open.
func JoinWaitlistButton(label, classes string) g.Node {
	return A(
		Href("/?waitlist=open"),
		Class("inline-block text-center "+classes),
		g.Attr("data-open-waitlist", ""),
		g.Attr("aria-controls", "waitlist-modal"),
		g.Text(label),
	)
}

const inputClass = "w-full px-4 py-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-blue-500 focus:border-transparent outline-none transition-all"

type field struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Required    bool
	Multiline   bool
}

func formField(formID string, f field, view models.FormView) g.Node {
	id := formID + "-" + f.Name

	var control g.Node
	if f.Multiline {
		control = Textarea(
			ID(id),
			Name(f.Name),
			g.Attr("rows", "5"),
			Placeholder(f.Placeholder),
			Class(inputClass+" resize-none"),
			g.If(f.Required, Required()),
			g.Text(view.State.Get(f.Name)),
		)
	} else {
		control = Input(
			ID(id),
			Type(f.Type),
			Name(f.Name),
			Value(view.State.Get(f.Name)),
			Placeholder(f.Placeholder),
			Class(inputClass),
			g.If(f.Required, Required()),
		)
	}

	return Div(
		Label(
			g.Attr("for", id),
			Class("block text-sm font-medium text-gray-700 mb-2"),
			g.Text(f.Label),
			g.If(!f.Required, Span(Class("text-gray-400"), g.Text(" (optional)"))),
		),
		control,
		g.If(view.Errors[f.Name] != "",
			P(Class("mt-1 text-sm text-red-600"), g.Attr("data-field-error", f.Name), g.Text(view.Errors[f.Name])),
		),
	)
}

// StatusMessage renders the outcome of the last submit attempt, or an empty live region
func StatusMessage(status models.SubmissionStatus) g.Node {
	classes := "hidden"
	switch status.Status {
	case models.StatusSuccess:
		classes = "p-4 rounded-lg bg-green-50 text-green-800 border border-green-200"
	case models.StatusError:
		classes = "p-4 rounded-lg bg-red-50 text-red-800 border border-red-200"
	}

	return Div(
		Class(classes),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.Attr("data-status", string(status.Status)),
		g.If(status.Message != "", g.Text(status.Message)),
	)
}
