package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sebicas/site/pkg/content"
)

var (
	primary = lipgloss.Color("#3b82f6")
	gray    = lipgloss.Color("#9ca3af")
	faint   = lipgloss.Color("#4b5563")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	accentStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary)
	textStyle    = lipgloss.NewStyle().Foreground(gray)
	sepStyle     = lipgloss.NewStyle().Foreground(faint)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(0, 1)
)

// glyphs stand in for the SVG icons in a terminal.
var glyphs = map[content.Icon]string{
	content.IconLinkedIn:  "in",
	content.IconInstagram: "ig",
	content.IconFacebook:  "fb",
	content.IconGitHub:    "gh",
	content.IconYouTube:   "yt",
	content.IconTelegram:  "tg",
	content.IconMenu:      "≡",
	content.IconClose:     "×",
	content.IconPlay:      "▶",
	content.IconGlobe:     "◍",
	content.IconMapPin:    "⌖",
	content.IconPlane:     "✈",
	content.IconHeart:     "♥",
}

func glyph(i content.Icon) string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return "?"
}

type card struct {
	icon  content.Icon
	title string
	text  string
}

var aboutCards = []card{
	{content.IconGlobe, "Global Citizen", "Born in Argentina. Experienced life in the USA, Canada, and UAE. A true citizen of the world with a diverse cultural perspective."},
	{content.IconMapPin, "Costa Rica", `Currently enjoying the "Pura Vida" lifestyle in San Jose, Costa Rica. Building businesses and memories in paradise.`},
	{content.IconPlane, "Pilot", "Aviation enthusiast and pilot. Seeing the world from above gives me a unique perspective on life and business."},
	{content.IconHeart, "Family First", "Happily married to an amazing woman and proud father of two wonderful kids. They are my greatest investment."},
}

type page struct {
	body string
	// anchors maps nav hrefs to the line their section starts on.
	anchors map[string]int
}

type builder struct {
	lines   []string
	anchors map[string]int
	width   int
}

func (b *builder) anchor(href string) {
	b.anchors[href] = len(b.lines)
}

func (b *builder) add(s string) {
	b.lines = append(b.lines, strings.Split(s, "\n")...)
}

func (b *builder) blank() {
	b.lines = append(b.lines, "")
}

func (b *builder) center(s string) {
	b.add(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, s))
}

func renderPage(width, year int) page {
	if width < 40 {
		width = 40
	}
	b := &builder{anchors: map[string]int{}, width: width}
	wrap := lipgloss.NewStyle().Width(min(width, 72))

	b.anchor("#home")
	b.blank()
	var socials []string
	for _, link := range content.SocialLinks() {
		socials = append(socials, fmt.Sprintf("[%s]", glyph(link.Icon)))
	}
	b.center(textStyle.Render(strings.Join(socials, " ")))
	b.blank()
	b.center(headingStyle.Render("I am " + content.Handle))
	b.blank()

	roles := content.Roles()
	var parts []string
	for i, r := range roles {
		parts = append(parts, accentStyle.Render(strings.ToUpper(r.Title)))
		if i < len(roles)-1 {
			parts = append(parts, sepStyle.Render("/"))
		}
	}
	b.center(lipgloss.NewStyle().Width(min(width, 72)).Align(lipgloss.Center).Render(strings.Join(parts, " ")))
	b.blank()
	b.center(wrap.Render(textStyle.Render("I am a serial internet entrepreneur, married to an amazing woman and have 2 beautifull kids. Currently living in Costa Rica. Originally Argentinean, but lived in USA, Canada, and UAE for many years.")))
	b.blank()
	b.center(accentStyle.Render(glyph(content.IconPlay) + " Learn More"))
	b.blank()
	b.blank()

	b.anchor("#about")
	b.center(accentStyle.Render("MY STORY"))
	b.center(headingStyle.Render("About Me"))
	b.blank()
	cardWidth := min(width-4, 68)
	for _, c := range aboutCards {
		inner := headingStyle.Render(glyph(c.icon)+"  "+c.title) + "\n" +
			lipgloss.NewStyle().Width(cardWidth-4).Render(textStyle.Render(c.text))
		b.center(cardStyle.Width(cardWidth).Render(inner))
	}
	b.blank()

	b.anchor("#ventures")
	b.center(headingStyle.Render("Ventures & Investments"))
	b.blank()
	b.center(wrap.Render(textStyle.Render("As a serial entrepreneur, I'm constantly exploring new opportunities in the tech space. Check out my LinkedIn for the latest updates on my projects.")))
	b.center(accentStyle.Render("View on LinkedIn → " + content.LinkedIn))
	b.blank()

	b.anchor("#blog")
	b.center(headingStyle.Render("Blog"))
	b.center(textStyle.Render("Coming soon. Not yet implemented."))
	b.blank()

	b.center(headingStyle.Render("sebicas") + accentStyle.Render(".com"))
	b.center(sepStyle.Render(fmt.Sprintf("© %d %s. All rights reserved.", year, content.Owner)))

	return page{body: strings.Join(b.lines, "\n"), anchors: b.anchors}
}
