package domain

// Profile is the single portfolio-owner record served by /api/profile.
type Profile struct {
	Name     string       `json:"name"`
	PhotoURL string       `json:"photo_url"`
	Tagline  *string      `json:"tagline,omitempty"`
	Socials  []SocialLink `json:"socials"`
}

// SocialLink represents a labelled social link entry (e.g. GitHub, X).
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
