package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nexacrm/landing/pkg/models"
)

const (
	WaitlistFormID = "waitlist-form"
	ContactFormID  = "contact-form"
)

var contactFields = []field{
	{Name: "name", Label: "Name", Type: "text", Placeholder: "Your name", Required: true},
	{Name: "email", Label: "Email", Type: "email", Placeholder: "your.email@example.com", Required: true},
	{Name: "message", Label: "Message", Type: "text", Placeholder: "Tell us how we can help...", Required: true, Multiline: true},
}

var waitlistFields = []field{
	{Name: "name", Label: "Full Name", Type: "text", Placeholder: "Jane Doe", Required: true},
	{Name: "email", Label: "Work Email", Type: "email", Placeholder: "jane@company.com", Required: true},
	{Name: "company", Label: "Company", Type: "text", Placeholder: "Acme Inc."},
}

// submissionForm posts to action. Without JavaScript the browser submits it
// normally; forms.js intercepts the submit and sends JSON instead.
func submissionForm(id, action, submitLabel string, fields []field, view models.FormView, extra ...g.Node) g.Node {
	return g.El("form",
		ID(id),
		Action(action),
		Method("post"),
		Class("space-y-6"),
		g.Attr("data-async-form", ""),
		g.Group(extra),
		g.Group(g.Map(fields, func(f field) g.Node {
			return formField(id, f, view)
		})),
		StatusMessage(view.Status),
		Button(
			Type("submit"),
			Class("w-full bg-blue-600 hover:bg-blue-700 disabled:opacity-60 disabled:cursor-not-allowed text-white py-4 px-6 rounded-lg font-medium transition-colors"),
			g.Attr("data-submit-label", submitLabel),
			g.Text(submitLabel),
		),
	)
}

func Contact(view models.FormView, supportEmail string) g.Node {
	return Section(
		ID("contact"),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gray-50"),
		Div(
			Class("max-w-4xl mx-auto"),
			SectionHeading("Get in Touch", "Have questions? We'd love to hear from you"),
			Div(
				Reveal("bg-white rounded-2xl shadow-xl p-8"),
				submissionForm(ContactFormID, "/api/contact", "Send Message", contactFields, view),
				P(
					Class("text-center text-gray-600 pt-6"),
					g.Text("Or email us at "),
					A(Href("mailto:"+supportEmail), Class("text-blue-600 hover:text-blue-700 font-medium"), g.Text(supportEmail)),
				),
			),
		),
	)
}

// WaitlistModal is hidden until a Join Waitlist button opens it
func WaitlistModal(view models.FormView, open bool, closeAfterMs int64) g.Node {
	visibility := "hidden"
	if open {
		visibility = "flex"
	}

	return Div(
		ID("waitlist-modal"),
		Class(visibility+" fixed inset-0 z-[60] items-center justify-center bg-black/50 px-4"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", "waitlist-title"),
		g.Attr("data-modal", ""),
		Div(
			Class("relative w-full max-w-md bg-white rounded-2xl shadow-2xl p-8"),
			A(
				Href("/"),
				Class("absolute top-4 right-4 text-gray-400 hover:text-gray-600 text-2xl leading-none"),
				g.Attr("aria-label", "Close"),
				g.Attr("data-close-modal", ""),
				g.Raw("&times;"),
			),
			H2(ID("waitlist-title"), Class("text-2xl font-bold text-gray-900 mb-2"), g.Text("Join the Waitlist")),
			P(Class("text-gray-600 mb-6"), g.Text("Be the first to know when NexaCRM launches.")),
			submissionForm(WaitlistFormID, "/api/waitlist", "Join Waitlist", waitlistFields, view,
				g.Attr("data-close-after", strconv.FormatInt(closeAfterMs, 10)),
			),
		),
	)
}
