package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate())

	links := SocialLinks()
	require.Len(t, links, 6)

	platforms := make([]string, 0, len(links))
	for _, l := range links {
		platforms = append(platforms, l.Platform)
	}
	require.Equal(t, []string{"LinkedIn", "Instagram", "Facebook", "GitHub", "YouTube", "Telegram"}, platforms)

	require.Equal(t, []NavItem{
		{Label: "Home", Href: "#home"},
		{Label: "About", Href: "#about"},
		{Label: "Ventures", Href: "#ventures"},
		{Label: "Blog", Href: "#blog"},
	}, NavItems())

	require.Len(t, Roles(), 6)
	require.Equal(t, "Husband", Roles()[0].Title)
	require.Equal(t, "Pilot", Roles()[5].Title)
}

func TestTablesAreCopies(t *testing.T) {
	t.Parallel()

	links := SocialLinks()
	links[0].URL = "https://example.com"
	require.Equal(t, LinkedIn, SocialLinks()[0].URL)

	items := NavItems()
	items[3].Href = "#nowhere"
	require.Equal(t, "#blog", NavItems()[3].Href)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		links []SocialLink
		items []NavItem
		roles []Role
	}

	testCases := []testCase{
		{
			name: "duplicate platform",
			links: []SocialLink{
				{Platform: "GitHub", URL: "https://github.com/a", Icon: IconGitHub},
				{Platform: "GitHub", URL: "https://github.com/b", Icon: IconGitHub},
			},
		},
		{
			name:  "relative url",
			links: []SocialLink{{Platform: "GitHub", URL: "/github", Icon: IconGitHub}},
		},
		{
			name:  "missing icon",
			links: []SocialLink{{Platform: "GitHub", URL: "https://github.com/a"}},
		},
		{
			name:  "empty nav label",
			items: []NavItem{{Href: "#home"}},
		},
		{
			name:  "empty role",
			roles: []Role{{}},
		},
	}

	for _, tc := range testCases {
		err := validate(tc.links, tc.items, tc.roles)
		require.ErrorIs(t, err, ErrInvalidTable, tc.name)
	}
}

func TestIconString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "linkedin", IconLinkedIn.String())
	require.Equal(t, "map-pin", IconMapPin.String())
	require.Equal(t, "unknown", Icon(999).String())
}
