package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type Plan struct {
	Name        string
	Description string
	Price       string
	Features    []string
	Highlighted bool
}

type Resource struct {
	Icon        string
	Title       string
	Description string
	Link        string
}

func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("pt-32 pb-20 px-4 sm:px-6 lg:px-8 bg-gradient-to-br from-blue-50 to-white"),
		Div(
			Class("max-w-7xl mx-auto grid md:grid-cols-2 gap-12 items-center"),
			Div(
				Reveal(""),
				H1(
					Class("text-5xl md:text-6xl font-bold text-gray-900 leading-tight mb-6"),
					g.Text("The CRM Built for "),
					Span(Class("bg-gradient-to-r from-blue-600 to-blue-800 bg-clip-text text-transparent"), g.Text("Growing Teams")),
				),
				P(Class("text-xl text-gray-600 mb-8"), g.Text("Manage clients, track sales, and scale operations seamlessly.")),
				Div(
					Class("flex flex-col sm:flex-row gap-4"),
					JoinWaitlistButton("Join Waitlist", "bg-blue-600 hover:bg-blue-700 text-white px-8 py-4 rounded-lg font-medium transition-colors shadow-lg"),
					A(
						Href("#demo"),
						Class("border-2 border-gray-300 hover:border-blue-600 text-gray-700 hover:text-blue-600 px-8 py-4 rounded-lg font-medium transition-colors text-center"),
						g.Text("Watch Demo Video"),
					),
				),
			),
			Div(
				Reveal("relative"),
				Div(
					Class("bg-gradient-to-br from-blue-100 to-blue-50 rounded-2xl p-8 shadow-2xl"),
					Div(
						Class("bg-white rounded-lg p-6 space-y-4"),
						Div(Class("h-16 bg-gradient-to-r from-blue-500 to-blue-600 rounded-lg")),
						Div(
							Class("grid grid-cols-3 gap-3"),
							Div(Class("h-12 bg-gray-100 rounded")),
							Div(Class("h-12 bg-gray-100 rounded")),
							Div(Class("h-12 bg-gray-100 rounded")),
						),
					),
				),
			),
		),
	)
}

func Features() g.Node {
	features := []Feature{
		{"👥", "Customer Management", "Organize and track all customer interactions in one centralized platform."},
		{"📊", "Pipeline & Deal Tracking", "Visualize your sales pipeline and move deals through stages effortlessly."},
		{"🤝", "Team Collaboration", "Work together seamlessly with real-time updates and shared insights."},
		{"📈", "Analytics & Reports", "Get actionable insights with customizable reports and dashboards."},
		{"🔗", "Integrations", "Connect with your favorite tools and automate workflows."},
		{"⚡", "Automation", "Save time with smart automation for repetitive tasks and follow-ups."},
	}

	return Section(
		ID("features"),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-white"),
		Div(
			Class("max-w-7xl mx-auto"),
			SectionHeading("Everything You Need to Grow", "Powerful features designed for modern sales teams"),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(features, func(f Feature) g.Node {
					return Div(
						Reveal("p-6 rounded-xl border border-gray-200 hover:shadow-lg transition-shadow"),
						Div(Class("text-4xl mb-4"), g.Text(f.Icon)),
						H3(Class("text-xl font-semibold text-gray-900 mb-3"), g.Text(f.Title)),
						P(Class("text-gray-600"), g.Text(f.Description)),
					)
				})),
			),
		),
	)
}

func Demo() g.Node {
	return Section(
		ID("demo"),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gradient-to-br from-blue-50 to-white"),
		Div(
			Class("max-w-5xl mx-auto"),
			SectionHeading("See NexaCRM in Action", "See how NexaCRM helps your team close more deals in less time."),
			Div(
				Reveal("relative rounded-2xl overflow-hidden shadow-2xl bg-gray-900 aspect-video"),
				Div(Class("w-full h-full bg-gradient-to-br from-blue-900 to-blue-700")),
			),
		),
	)
}

func Pricing() g.Node {
	plans := []Plan{
		{"Starter", "Perfect for small teams getting started", "Coming Soon",
			[]string{"Up to 5 users", "Basic CRM features", "Email support", "1GB storage"}, false},
		{"Growth", "For growing teams that need more power", "Coming Soon",
			[]string{"Up to 25 users", "Advanced analytics", "Priority support", "10GB storage", "Custom integrations"}, true},
		{"Enterprise", "For large organizations with custom needs", "Custom",
			[]string{"Unlimited users", "Enterprise features", "Dedicated support", "Unlimited storage", "Custom solutions"}, false},
	}

	return Section(
		ID("pricing"),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-white"),
		Div(
			Class("max-w-7xl mx-auto"),
			SectionHeading("Simple, Transparent Pricing", "Choose the plan that fits your team"),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(plans, planCard)),
			),
		),
	)
}

func planCard(p Plan) g.Node {
	card, muted, button := "bg-gray-50 border border-gray-200", "text-gray-600", "bg-blue-600 text-white hover:bg-blue-700"
	if p.Highlighted {
		card, muted, button = "bg-blue-600 text-white shadow-2xl scale-105", "text-blue-100", "bg-white text-blue-600 hover:bg-gray-100"
	}

	return Div(
		Reveal("rounded-2xl p-8 "+card),
		g.Attr("data-plan", p.Name),
		H3(Class("text-2xl font-bold mb-2"), g.Text(p.Name)),
		P(Class("mb-6 "+muted), g.Text(p.Description)),
		Div(Class("mb-6"), Span(Class("text-4xl font-bold"), g.Text(p.Price))),
		Ul(
			Class("space-y-3 mb-8"),
			g.Group(g.Map(p.Features, func(f string) g.Node {
				return Li(Class("flex items-center "+muted), Span(Class("mr-3"), g.Text("✓")), g.Text(f))
			})),
		),
		JoinWaitlistButton("Join Waitlist", "w-full py-3 px-6 rounded-lg font-medium transition-colors "+button),
	)
}

func Resources() g.Node {
	resources := []Resource{
		{"📝", "Blog", "Latest insights and best practices", "#"},
		{"❓", "Help Center", "Get answers to your questions", "#"},
		{"🚀", "Product Updates", "Stay updated with new features", "#"},
	}

	return Section(
		ID("resources"),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-gray-50"),
		Div(
			Class("max-w-7xl mx-auto"),
			SectionHeading("Resources", "Learn more about getting the most out of NexaCRM"),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(resources, func(r Resource) g.Node {
					return A(
						Href(r.Link),
						Reveal("group bg-white p-6 rounded-xl border border-gray-200 hover:shadow-lg transition-all"),
						Div(Class("text-4xl mb-4"), g.Text(r.Icon)),
						H3(Class("text-xl font-semibold text-gray-900 mb-2 group-hover:text-blue-600"), g.Text(r.Title)),
						P(Class("text-gray-600"), g.Text(r.Description)),
					)
				})),
			),
		),
	)
}

func About() g.Node {
	return Section(
		ID("about-us"),
		Class("py-20 px-4 sm:px-6 lg:px-8 bg-white"),
		Div(
			Class("max-w-4xl mx-auto text-center"),
			Div(
				Reveal(""),
				H2(Class("text-4xl font-bold text-gray-900 mb-6"), g.Text("About NexaCRM")),
				P(Class("text-lg text-gray-600 mb-6"), g.Text("We're on a mission to empower growing teams with the tools they need to build lasting customer relationships and drive sustainable growth.")),
				P(Class("text-lg text-gray-600"), g.Text("Built by a team of sales professionals and software engineers, NexaCRM combines powerful features with an intuitive interface that your team will actually love to use.")),
			),
		),
	)
}

func PageFooter() g.Node {
	social := []Resource{
		{"𝕏", "Twitter", "", "#"},
		{"💼", "LinkedIn", "", "#"},
		{"👨‍💻", "GitHub", "", "#"},
	}

	return Footer(
		Class("bg-gray-900 text-white py-16 px-4 sm:px-6 lg:px-8"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("bg-gradient-to-r from-blue-600 to-blue-700 rounded-2xl p-12 text-center mb-12"),
				H3(Class("text-3xl font-bold mb-4"), g.Text("Be among the first 500 users to try NexaCRM")),
				P(Class("text-blue-100 mb-6 text-lg"), g.Text("Get exclusive early access and special launch pricing")),
				JoinWaitlistButton("Join Waitlist Now", "bg-white text-blue-600 hover:bg-gray-100 px-8 py-4 rounded-lg font-medium transition-colors shadow-lg"),
			),
			Div(
				Class("grid md:grid-cols-4 gap-8 mb-12"),
				Div(
					Class("md:col-span-2"),
					H4(Class("text-2xl font-bold mb-4"), g.Text(ProductName)),
					P(Class("text-gray-400"), g.Text("The CRM built for growing teams. Manage clients, track sales, and scale operations seamlessly.")),
				),
				footerLinks("Product", "Features", "Pricing", "Demo"),
				footerLinks("Company", "About Us", "Resources", "Contact"),
			),
			Div(
				Class("flex justify-center space-x-6 mb-8"),
				g.Group(g.Map(social, func(s Resource) g.Node {
					return A(Href(s.Link), Class("text-2xl hover:text-blue-400 transition-colors"), g.Attr("aria-label", s.Title), g.Text(s.Icon))
				})),
			),
			Div(
				Class("border-t border-gray-800 pt-8 text-center text-gray-400"),
				P(g.Raw("&copy; 2025 NexaCRM. All rights reserved.")),
			),
		),
	)
}

func footerLinks(title string, items ...string) g.Node {
	return Div(
		H5(Class("font-semibold mb-4"), g.Text(title)),
		Ul(
			Class("space-y-2 text-gray-400"),
			g.Group(g.Map(items, func(item string) g.Node {
				return Li(A(Href(anchorFor(item)), Class("hover:text-white transition-colors"), g.Text(item)))
			})),
		),
	)
}
