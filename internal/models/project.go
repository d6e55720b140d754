package models

// Project represents a portfolio project stored as projects/<slug>.json
type Project struct {
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Description     string         `json:"description"`
	Tags            []string       `json:"tags"`
	GitHub          string         `json:"github,omitempty"`
	Link            string         `json:"link,omitempty"`
	V0Link          string         `json:"v0Link,omitempty"`
	Image           string         `json:"image,omitempty"`
	Featured        bool           `json:"featured"`
	FullDescription []ContentBlock `json:"fullDescription,omitempty"`
	Screenshots     []Screenshot   `json:"screenshots,omitempty"`
}

// Screenshot is an image shown on a project detail page
type Screenshot struct {
	Image string `json:"image"`
	Alt   string `json:"alt"`
}
