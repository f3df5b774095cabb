// Package content holds the fixed tables the site is rendered from. The tables
// are only reachable through copies, so nothing outside this file can change
// what gets rendered.
package content

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

type SocialLink struct {
	Platform string
	URL      string
	Icon     Icon
}

type NavItem struct {
	Label string
	Href  string
}

type Role struct {
	Title string
}

const (
	Owner    = "Sebastian Castro"
	Handle   = "@sebicas"
	Domain   = "sebicas.com"
	LinkedIn = "https://www.linkedin.com/in/sebicas/"

	// ScrollThreshold is the vertical offset in pixels past which the navbar
	// switches to its scrolled presentation.
	ScrollThreshold = 50
)

var ErrInvalidTable = errors.New("invalid content table")

var socialLinks = []SocialLink{
	{Platform: "LinkedIn", URL: LinkedIn, Icon: IconLinkedIn},
	{Platform: "Instagram", URL: "https://www.instagram.com/sebicas", Icon: IconInstagram},
	{Platform: "Facebook", URL: "https://www.facebook.com/sebicas", Icon: IconFacebook},
	{Platform: "GitHub", URL: "https://github.com/sebicas", Icon: IconGitHub},
	{Platform: "YouTube", URL: "https://www.youtube.com/sebicastro", Icon: IconYouTube},
	{Platform: "Telegram", URL: "https://t.me/sebicastro", Icon: IconTelegram},
}

var navItems = []NavItem{
	{Label: "Home", Href: "#home"},
	{Label: "About", Href: "#about"},
	{Label: "Ventures", Href: "#ventures"},
	{Label: "Blog", Href: "#blog"},
}

var roles = []Role{
	{Title: "Husband"},
	{Title: "Father"},
	{Title: "IT Enthusiast"},
	{Title: "Serial Entrepreneur"},
	{Title: "Investor"},
	{Title: "Pilot"},
}

func SocialLinks() []SocialLink {
	return slices.Clone(socialLinks)
}

func NavItems() []NavItem {
	return slices.Clone(navItems)
}

func Roles() []Role {
	return slices.Clone(roles)
}

// Validate reports the first table entry that breaks the rendering
// assumptions: unique platforms, absolute http(s) URLs, non-empty labels.
func Validate() error {
	return validate(socialLinks, navItems, roles)
}

func validate(links []SocialLink, items []NavItem, rs []Role) error {
	seen := make(map[string]struct{}, len(links))
	for _, link := range links {
		if link.Platform == "" {
			return fmt.Errorf("%w: social link with empty platform", ErrInvalidTable)
		}
		if _, ok := seen[link.Platform]; ok {
			return fmt.Errorf("%w: duplicate platform %q", ErrInvalidTable, link.Platform)
		}
		seen[link.Platform] = struct{}{}

		u, err := url.Parse(link.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s url %q is not absolute", ErrInvalidTable, link.Platform, link.URL)
		}
		if link.Icon == IconNone {
			return fmt.Errorf("%w: %s has no icon", ErrInvalidTable, link.Platform)
		}
	}

	for _, item := range items {
		if item.Label == "" || item.Href == "" {
			return fmt.Errorf("%w: nav item %+v", ErrInvalidTable, item)
		}
	}

	for i, r := range rs {
		if r.Title == "" {
			return fmt.Errorf("%w: role %d has empty title", ErrInvalidTable, i)
		}
	}
	return nil
}
