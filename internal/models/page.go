package models

// Logical paths of the static page documents
const (
	HeroPath    = "home/hero"
	AboutPath   = "pages/about"
	ContactPath = "pages/contact"
)

// Link is a labelled button or anchor
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// SocialLink points at an external profile
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label"`
}

// HeroContent is the home page hero section
type HeroContent struct {
	Title           string       `json:"title"`
	Subtitle        string       `json:"subtitle"`
	Description     string       `json:"description"`
	PrimaryButton   Link         `json:"primaryButton"`
	SecondaryButton Link         `json:"secondaryButton"`
	SocialLinks     []SocialLink `json:"socialLinks"`
	Image           string       `json:"image"`
}

// AboutSection is one titled block of the about page
type AboutSection struct {
	Title   string   `json:"title"`
	Content []string `json:"content,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// Experience is one entry in the work history
type Experience struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Period  string `json:"period"`
}

// AboutContent is the about page
type AboutContent struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Sections     []AboutSection `json:"sections"`
	ResumeButton Link           `json:"resumeButton"`
	Experience   []Experience   `json:"experience"`
}

// ValidFieldTypes defines allowed contact form field types
var ValidFieldTypes = map[string]bool{
	"text":     true,
	"email":    true,
	"textarea": true,
	"tel":      true,
	"url":      true,
}

// FormField is one input of the contact form
type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
	Rows        int    `json:"rows,omitempty"`
}

// SubmitButton is the contact form submit control
type SubmitButton struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// ContactFormContent is the contact page form definition
type ContactFormContent struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Fields       []FormField  `json:"fields"`
	SubmitButton SubmitButton `json:"submitButton"`
}
