package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/portfolio-content-api/internal/models"
)

func validPost() *models.BlogPost {
	return &models.BlogPost{
		Title:  "Refactor to Hooks, not Classes",
		Slug:   "refactor-to-hooks",
		Date:   "2020-05-15",
		Author: "Evan Schultz",
		Content: []models.ContentBlock{
			{Type: models.BlockHeading, Level: 2, Content: "Intro"},
			{Type: models.BlockParagraph, Content: "Hooks are functions."},
			{Type: models.BlockList, Items: []models.ListItem{models.TextItem("useState")}},
			{Type: models.BlockCode, Language: "js", Content: "useState()"},
		},
		Tags:     []string{"React", "Hooks"},
		Category: "React",
	}
}

func fieldsOf(errs []ValidationError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateBlogPost(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.BlogPost)
		slug       string
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid post",
			mutate:     func(*models.BlogPost) {},
			slug:       "refactor-to-hooks",
			wantErrors: 0,
		},
		{
			name:       "missing title",
			mutate:     func(p *models.BlogPost) { p.Title = "" },
			slug:       "refactor-to-hooks",
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "unparseable date",
			mutate:     func(p *models.BlogPost) { p.Date = "May 15th" },
			slug:       "refactor-to-hooks",
			wantErrors: 1,
			wantFields: []string{"date"},
		},
		{
			name:       "missing author and content",
			mutate:     func(p *models.BlogPost) { p.Author = ""; p.Content = nil },
			slug:       "refactor-to-hooks",
			wantErrors: 2,
			wantFields: []string{"author", "content"},
		},
		{
			name:       "embedded slug differs from file name",
			mutate:     func(*models.BlogPost) {},
			slug:       "other-name",
			wantErrors: 1,
			wantFields: []string{"slug"},
		},
		{
			name:       "file slug not kebab-case",
			mutate:     func(p *models.BlogPost) { p.Slug = "" },
			slug:       "Bad_Slug",
			wantErrors: 1,
			wantFields: []string{"slug"},
		},
		{
			name:       "blank tag",
			mutate:     func(p *models.BlogPost) { p.Tags = append(p.Tags, " ") },
			slug:       "refactor-to-hooks",
			wantErrors: 1,
			wantFields: []string{"tags[2]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.mutate(post)

			errs := NewValidator().ValidateBlogPost(post, tt.slug)
			if len(errs) != tt.wantErrors {
				t.Fatalf("Expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
			got := strings.Join(fieldsOf(errs), ",")
			for _, f := range tt.wantFields {
				if !strings.Contains(got, f) {
					t.Errorf("Expected error on field %q, got %s", f, got)
				}
			}
		})
	}
}

func TestValidateBlocks(t *testing.T) {
	blocks := []models.ContentBlock{
		{Type: models.BlockHeading},
		{Type: models.BlockHeading, Level: 9, Content: "Too deep"},
		{Type: models.BlockParagraph},
		{Type: models.BlockList},
		{Type: models.BlockList, Items: []models.ListItem{models.TextItem("")}},
		{Type: models.BlockCode},
		{Type: "quote", Content: "x"},
		{Content: "no type"},
	}

	errs := ValidateBlocks("content", blocks)
	want := []string{
		"content[0]",
		"content[1].level",
		"content[2]",
		"content[3]",
		"content[4].items[0]",
		"content[5]",
		"content[6].type",
		"content[7].type",
	}
	if len(errs) != len(want) {
		t.Fatalf("Expected %d errors, got %d: %v", len(want), len(errs), errs)
	}
	for i, f := range want {
		if errs[i].Field != f {
			t.Errorf("Error %d: expected field %q, got %q", i, f, errs[i].Field)
		}
	}
}

func TestValidateProject(t *testing.T) {
	project := &models.Project{
		Title:       "Sonic Geometry Explorer",
		Slug:        "sonic-geometry-explorer",
		Description: "Audio-reactive geometry",
		Tags:        []string{"WebGL"},
		GitHub:      "https://github.com/example/sonic",
		Link:        "not a url",
		Screenshots: []models.Screenshot{{Alt: "missing image"}},
		FullDescription: []models.ContentBlock{
			{Type: models.BlockParagraph, Content: "ok"},
		},
	}

	errs := NewValidator().ValidateProject(project, "sonic-geometry-explorer")
	got := fieldsOf(errs)
	if len(got) != 2 || got[0] != "link" || got[1] != "screenshots[0].image" {
		t.Errorf("Expected link and screenshot errors, got %v", got)
	}

	empty := &models.Project{}
	errs = NewValidator().ValidateProject(empty, "empty")
	if len(errs) != 3 {
		t.Errorf("Expected title, description and tags errors, got %v", errs)
	}
}

func TestValidator_DuplicateSlugs(t *testing.T) {
	v := NewValidator()
	v.AddSlug("blog", "hello-world")

	if errs := v.ValidateSlug("blog", "hello-world"); len(errs) != 1 || errs[0].Message != "duplicate slug" {
		t.Errorf("Expected duplicate slug error, got %v", errs)
	}
	// Same slug in another kind is fine
	if errs := v.ValidateSlug("projects", "hello-world"); len(errs) != 0 {
		t.Errorf("Expected no errors across kinds, got %v", errs)
	}
}

func TestDecodeHero(t *testing.T) {
	hero, err := DecodeHero([]byte(`{
		"title": "Hi, I'm Evan",
		"subtitle": "Engineer",
		"socialLinks": [{"platform": "GitHub", "url": "https://github.com/e"}]
	}`))
	if err != nil {
		t.Fatalf("DecodeHero failed: %v", err)
	}
	if hero.SocialLinks[0].Label != "GitHub" {
		t.Errorf("Expected label to default to platform, got %q", hero.SocialLinks[0].Label)
	}

	_, err = DecodeHero([]byte(`{"title": "x", "heroVideo": "y"}`))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaError for unknown field, got %v", err)
	}

	if _, err := DecodeHero([]byte(`{"subtitle": "no title"}`)); err == nil {
		t.Error("Expected error for missing title")
	}
}

func TestDecodeAbout_Defaults(t *testing.T) {
	about, err := DecodeAbout([]byte(`{"title": "About me"}`))
	if err != nil {
		t.Fatalf("DecodeAbout failed: %v", err)
	}
	if about.Sections == nil || about.Experience == nil {
		t.Error("Expected empty, non-nil sections and experience")
	}

	if _, err := DecodeAbout([]byte(`{"title": "x", "sections": [{"items": ["a"]}]}`)); err == nil {
		t.Error("Expected error for untitled section")
	}
}

func TestDecodeContactForm(t *testing.T) {
	form, err := DecodeContactForm([]byte(`{
		"title": "Get in touch",
		"fields": [
			{"name": "name", "label": "Name"},
			{"name": "message", "label": "Message", "type": "textarea", "required": true}
		]
	}`))
	if err != nil {
		t.Fatalf("DecodeContactForm failed: %v", err)
	}
	if form.Fields[0].Type != "text" {
		t.Errorf("Expected default type text, got %q", form.Fields[0].Type)
	}
	if form.Fields[1].Rows != 4 {
		t.Errorf("Expected default textarea rows 4, got %d", form.Fields[1].Rows)
	}
	if form.SubmitButton.Text != "Send" {
		t.Errorf("Expected default submit text, got %q", form.SubmitButton.Text)
	}

	_, err = DecodeContactForm([]byte(`{
		"title": "x",
		"fields": [
			{"name": "a", "label": "A", "type": "checkbox"},
			{"name": "a", "label": "A again"}
		]
	}`))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) || len(schemaErr.Errors) != 2 {
		t.Errorf("Expected 2 schema errors, got %v", err)
	}
}

func TestDecodeStrict_TrailingData(t *testing.T) {
	if _, err := DecodeAbout([]byte(`{"title": "a"} {"title": "b"}`)); err == nil {
		t.Error("Expected error for trailing data")
	}
}

// BenchmarkValidateBlogPost benchmarks full post validation
func BenchmarkValidateBlogPost(b *testing.B) {
	post := validPost()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		NewValidator().ValidateBlogPost(post, post.Slug)
	}
}
