// ABOUTME: Site settings domain models describe the agent's website, profile and social accounts
// ABOUTME: Used to build JSON-LD snippets and page chrome

package domain

// WebsiteSettings describes the public website
type WebsiteSettings struct {
	// WebsiteName is the display name of the site
	WebsiteName string `yaml:"website_name" json:"website_name"`

	// WebsiteAddress is the bare host name, e.g. "homes.example.com"
	WebsiteAddress string `yaml:"website_address" json:"website_address"`

	// Logo is an absolute URL to the site logo
	Logo string `yaml:"logo" json:"logo"`
}

// ProfileSettings describes the agent behind the website
type ProfileSettings struct {
	FullName string `yaml:"full_name" json:"full_name"`
	Phone    string `yaml:"phone" json:"phone"`
	Email    string `yaml:"email" json:"email,omitempty"`
}

// SocialSettings holds links to the agent's social profiles
type SocialSettings struct {
	InstagramProfileURL string `yaml:"instagram_profile_url" json:"instagram_profile_url,omitempty"`
	FacebookProfileURL  string `yaml:"facebook_profile_url" json:"facebook_profile_url,omitempty"`
}

// SiteSettings groups all settings a page needs
type SiteSettings struct {
	Website WebsiteSettings `yaml:"website" json:"website"`
	Profile ProfileSettings `yaml:"profile" json:"profile"`
	Social  SocialSettings  `yaml:"social" json:"social"`
}

// SameAs returns the non-empty social profile URLs
func (s SocialSettings) SameAs() []string {
	urls := make([]string, 0, 2)
	if s.InstagramProfileURL != "" {
		urls = append(urls, s.InstagramProfileURL)
	}
	if s.FacebookProfileURL != "" {
		urls = append(urls, s.FacebookProfileURL)
	}
	return urls
}
