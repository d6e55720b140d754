package service

import (
	"context"
	"encoding/json"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// Auditor validates content documents against their kind's rules
type Auditor struct {
	source    content.Source
	lister    *content.Lister
	validator *validation.Validator
	log       zerolog.Logger
}

// NewAuditor creates an Auditor reading from source
func NewAuditor(source content.Source, log zerolog.Logger) *Auditor {
	return &Auditor{
		source:    source,
		lister:    content.NewLister(source, log),
		validator: validation.NewValidator(),
		log:       log.With().Str("component", "auditor").Logger(),
	}
}

// Audit validates every document of kinds and returns the problems found.
// Problems are also logged as warnings.
func (a *Auditor) Audit(ctx context.Context, kinds []string) []models.ValidationError {
	if len(kinds) == 0 {
		kinds = content.Kinds
	}

	var problems []models.ValidationError
	for _, kind := range kinds {
		for _, slug := range a.lister.Slugs(ctx, kind) {
			path := content.Join(kind, slug)
			data, err := a.source.Read(ctx, path)
			if err != nil {
				problems = append(problems, models.ValidationError{Path: path, Field: "document", Message: err.Error()})
				continue
			}
			if !json.Valid(data) {
				problems = append(problems, models.ValidationError{Path: path, Field: "document", Message: "malformed JSON"})
				continue
			}
			problems = append(problems, a.Check(kind, slug, data)...)
		}
	}

	for _, p := range problems {
		a.log.Warn().
			Str("path", p.Path).
			Str("field", p.Field).
			Interface("value", p.Value).
			Msg(p.Message)
	}
	return problems
}

// Check validates one well-formed document. Kinds and pages without a
// schema pass unchecked.
func (a *Auditor) Check(kind, slug string, data []byte) []models.ValidationError {
	path := content.Join(kind, slug)
	var errs []validation.ValidationError

	switch {
	case kind == content.KindBlog:
		var post models.BlogPost
		if err := json.Unmarshal(data, &post); err != nil {
			return []models.ValidationError{{Path: path, Field: "document", Message: err.Error()}}
		}
		errs = a.validator.ValidateBlogPost(&post, slug)
		a.validator.AddSlug(kind, slug)
	case kind == content.KindProjects:
		var project models.Project
		if err := json.Unmarshal(data, &project); err != nil {
			return []models.ValidationError{{Path: path, Field: "document", Message: err.Error()}}
		}
		errs = a.validator.ValidateProject(&project, slug)
		a.validator.AddSlug(kind, slug)
	case path == models.HeroPath:
		_, err := validation.DecodeHero(data)
		errs = schemaErrors(err)
	case path == models.AboutPath:
		_, err := validation.DecodeAbout(data)
		errs = schemaErrors(err)
	case path == models.ContactPath:
		_, err := validation.DecodeContactForm(data)
		errs = schemaErrors(err)
	}

	out := make([]models.ValidationError, 0, len(errs))
	for _, e := range errs {
		out = append(out, models.ValidationError{Path: path, Field: e.Field, Message: e.Message, Value: e.Value})
	}
	return out
}

func schemaErrors(err error) []validation.ValidationError {
	if err == nil {
		return nil
	}
	if schemaErr, ok := err.(*validation.SchemaError); ok {
		return schemaErr.Errors
	}
	return []validation.ValidationError{{Field: "document", Message: err.Error()}}
}
