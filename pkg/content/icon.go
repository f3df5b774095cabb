package content

type Icon int

const (
	IconNone Icon = iota
	IconLinkedIn
	IconInstagram
	IconFacebook
	IconGitHub
	IconYouTube
	IconTelegram
	IconMenu
	IconClose
	IconPlay
	IconGlobe
	IconMapPin
	IconPlane
	IconHeart
)

var iconNames = map[Icon]string{
	IconNone:      "none",
	IconLinkedIn:  "linkedin",
	IconInstagram: "instagram",
	IconFacebook:  "facebook",
	IconGitHub:    "github",
	IconYouTube:   "youtube",
	IconTelegram:  "telegram",
	IconMenu:      "menu",
	IconClose:     "close",
	IconPlay:      "play",
	IconGlobe:     "globe",
	IconMapPin:    "map-pin",
	IconPlane:     "plane",
	IconHeart:     "heart",
}

func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return "unknown"
}
