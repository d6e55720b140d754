package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/portfolio-content-api/internal/models"
)

// SchemaError reports a page document that does not fit its schema
type SchemaError struct {
	Page   string
	Errors []ValidationError
}

func (e *SchemaError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		msgs = append(msgs, ve.Error())
	}
	return fmt.Sprintf("%s: %s", e.Page, strings.Join(msgs, "; "))
}

// decodeStrict decodes data into v, rejecting fields v does not declare
func decodeStrict(page string, data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &SchemaError{Page: page, Errors: []ValidationError{{Field: "document", Message: err.Error()}}}
	}
	if _, err := dec.Token(); err != io.EOF {
		return &SchemaError{Page: page, Errors: []ValidationError{{Field: "document", Message: "unexpected data after top-level value"}}}
	}
	return nil
}

func schemaResult(page string, errors []ValidationError) error {
	if len(errors) == 0 {
		return nil
	}
	return &SchemaError{Page: page, Errors: errors}
}

// DecodeHero decodes and validates the home page hero section
func DecodeHero(data []byte) (*models.HeroContent, error) {
	var hero models.HeroContent
	if err := decodeStrict("hero", data, &hero); err != nil {
		return nil, err
	}

	var errors []ValidationError
	if hero.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if hero.SocialLinks == nil {
		hero.SocialLinks = []models.SocialLink{}
	}
	for i, link := range hero.SocialLinks {
		if link.Platform == "" || link.URL == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("socialLinks[%d]", i), Message: "platform and url are required"})
		}
		if link.Label == "" {
			hero.SocialLinks[i].Label = link.Platform
		}
	}

	if err := schemaResult("hero", errors); err != nil {
		return nil, err
	}
	return &hero, nil
}

// DecodeAbout decodes and validates the about page
func DecodeAbout(data []byte) (*models.AboutContent, error) {
	var about models.AboutContent
	if err := decodeStrict("about", data, &about); err != nil {
		return nil, err
	}

	var errors []ValidationError
	if about.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if about.Sections == nil {
		about.Sections = []models.AboutSection{}
	}
	if about.Experience == nil {
		about.Experience = []models.Experience{}
	}
	for i, section := range about.Sections {
		if section.Title == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("sections[%d].title", i), Message: "title is required"})
		}
	}

	if err := schemaResult("about", errors); err != nil {
		return nil, err
	}
	return &about, nil
}

// DecodeContactForm decodes and validates the contact form definition
func DecodeContactForm(data []byte) (*models.ContactFormContent, error) {
	var form models.ContactFormContent
	if err := decodeStrict("contact", data, &form); err != nil {
		return nil, err
	}

	var errors []ValidationError
	if form.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if form.Fields == nil {
		form.Fields = []models.FormField{}
	}
	if form.SubmitButton.Text == "" {
		form.SubmitButton.Text = "Send"
	}

	seen := make(map[string]bool)
	for i := range form.Fields {
		field := &form.Fields[i]
		name := fmt.Sprintf("fields[%d]", i)

		if field.Name == "" || field.Label == "" {
			errors = append(errors, ValidationError{Field: name, Message: "name and label are required"})
		}
		if seen[field.Name] {
			errors = append(errors, ValidationError{Field: name + ".name", Message: "duplicate field name", Value: field.Name})
		}
		seen[field.Name] = true

		if field.Type == "" {
			field.Type = "text"
		} else if !models.ValidFieldTypes[field.Type] {
			errors = append(errors, ValidationError{Field: name + ".type", Message: "invalid field type", Value: field.Type})
		}
		if field.Type == "textarea" && field.Rows == 0 {
			field.Rows = 4
		}
	}

	if err := schemaResult("contact", errors); err != nil {
		return nil, err
	}
	return &form, nil
}
