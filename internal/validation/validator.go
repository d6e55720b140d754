package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/portfolio-content-api/internal/models"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validator checks content documents. It remembers the slugs it has seen
// per kind so a run over a directory can report duplicates.
type Validator struct {
	slugCache map[string]map[string]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		slugCache: make(map[string]map[string]bool),
	}
}

// AddSlug records slug as used within kind
func (v *Validator) AddSlug(kind, slug string) {
	if v.slugCache[kind] == nil {
		v.slugCache[kind] = make(map[string]bool)
	}
	v.slugCache[kind][strings.ToLower(slug)] = true
}

// ValidSlug reports whether s is kebab-case
func ValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// ValidateSlug validates the file slug of a document within kind
func (v *Validator) ValidateSlug(kind, slug string) []ValidationError {
	var errors []ValidationError

	if slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: slug})
	} else if v.slugCache[kind][strings.ToLower(slug)] {
		errors = append(errors, ValidationError{Field: "slug", Message: "duplicate slug", Value: slug})
	}

	return errors
}

// ValidateBlogPost validates a blog post. fileSlug is the slug derived from
// the file name.
func (v *Validator) ValidateBlogPost(post *models.BlogPost, fileSlug string) []ValidationError {
	errors := v.ValidateSlug("blog", fileSlug)

	if post.Slug != "" && post.Slug != fileSlug {
		errors = append(errors, ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("slug does not match file name %q", fileSlug),
			Value:   post.Slug,
		})
	}

	if post.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if post.Date == "" {
		errors = append(errors, ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := post.PublishedAt(); !ok {
		errors = append(errors, ValidationError{Field: "date", Message: "invalid ISO 8601 date format", Value: post.Date})
	}

	if post.Author == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "author is required"})
	}

	if len(post.Content) == 0 {
		errors = append(errors, ValidationError{Field: "content", Message: "content has no blocks"})
	}
	errors = append(errors, ValidateBlocks("content", post.Content)...)

	for i, tag := range post.Tags {
		if strings.TrimSpace(tag) == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("tags[%d]", i), Message: "tag is empty"})
		}
	}

	return errors
}

// ValidateProject validates a project
func (v *Validator) ValidateProject(project *models.Project, fileSlug string) []ValidationError {
	errors := v.ValidateSlug("projects", fileSlug)

	if project.Slug != "" && project.Slug != fileSlug {
		errors = append(errors, ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("slug does not match file name %q", fileSlug),
			Value:   project.Slug,
		})
	}

	if project.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if project.Description == "" {
		errors = append(errors, ValidationError{Field: "description", Message: "description is required"})
	}
	if len(project.Tags) == 0 {
		errors = append(errors, ValidationError{Field: "tags", Message: "project has no tags"})
	}

	links := []struct{ field, url string }{
		{"github", project.GitHub},
		{"link", project.Link},
		{"v0Link", project.V0Link},
	}
	for _, link := range links {
		if link.url != "" && !isAbsoluteURL(link.url) {
			errors = append(errors, ValidationError{Field: link.field, Message: "must be an absolute http(s) URL", Value: link.url})
		}
	}

	errors = append(errors, ValidateBlocks("fullDescription", project.FullDescription)...)

	for i, shot := range project.Screenshots {
		if shot.Image == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("screenshots[%d].image", i), Message: "image is required"})
		}
	}

	return errors
}

// ValidateBlocks validates a sequence of content blocks. field names the
// enclosing document field in error messages.
func ValidateBlocks(field string, blocks []models.ContentBlock) []ValidationError {
	var errors []ValidationError

	for i, block := range blocks {
		name := fmt.Sprintf("%s[%d]", field, i)

		switch block.Type {
		case models.BlockHeading:
			if block.Content == "" {
				errors = append(errors, ValidationError{Field: name, Message: fmt.Sprintf("heading at index %d has no content", i)})
			}
			if block.Level != 0 && (block.Level < 1 || block.Level > 6) {
				errors = append(errors, ValidationError{Field: name + ".level", Message: "heading level must be between 1 and 6", Value: block.Level})
			}
		case models.BlockParagraph:
			if block.Content == "" {
				errors = append(errors, ValidationError{Field: name, Message: fmt.Sprintf("paragraph at index %d has no content", i)})
			}
		case models.BlockList:
			if len(block.Items) == 0 {
				errors = append(errors, ValidationError{Field: name, Message: fmt.Sprintf("list at index %d has no items", i)})
			}
			for j, item := range block.Items {
				if item.Empty() {
					errors = append(errors, ValidationError{Field: fmt.Sprintf("%s.items[%d]", name, j), Message: "list item is empty"})
				}
			}
		case models.BlockCode:
			if block.Content == "" {
				errors = append(errors, ValidationError{Field: name, Message: fmt.Sprintf("code at index %d has no content", i)})
			}
		case "":
			errors = append(errors, ValidationError{Field: name + ".type", Message: "block type is required"})
		default:
			errors = append(errors, ValidationError{
				Field:   name + ".type",
				Message: "invalid block type, must be one of: heading, paragraph, list, code",
				Value:   block.Type,
			})
		}
	}

	return errors
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
