package validator

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gosimple/slug"

	"github.com/antoniolaudieri/rimborsami/internal/category"
	"github.com/antoniolaudieri/rimborsami/internal/domain"
)

const (
	maxSlugLength     = 200
	maxCategoryLength = 64
)

var (
	partnerRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
	validSources = func() []interface{} {
		out := make([]interface{}, len(domain.ValidAffiliateSources))
		for i, s := range domain.ValidAffiliateSources {
			out[i] = s
		}
		return out
	}()
)

// NewsQuery is the query string of the article listing.
type NewsQuery struct {
	Category string `form:"category" json:"category"`
	Limit    int    `form:"limit" json:"limit"`
	Offset   int    `form:"offset" json:"offset"`
}

// Validator provides validation methods for request payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAffiliateClick validates a click reported by the client.
func (v *Validator) ValidateAffiliateClick(c *domain.AffiliateClick) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Partner,
			validation.Required.Error("partner_required"),
			validation.Match(partnerRegex).Error("invalid_partner"),
		),
		validation.Field(&c.Source,
			validation.Required.Error("source_required"),
			validation.In(validSources...).Error("invalid_source"),
		),
		validation.Field(&c.Category,
			validation.By(categoryCodeRule),
		),
		validation.Field(&c.UserID,
			is.UUID.Error("invalid_user_id"),
		),
	)
}

// ValidateSlug checks a path slug.
func (v *Validator) ValidateSlug(s string) error {
	return validation.Validate(s,
		validation.Required.Error("slug_required"),
		validation.RuneLength(1, maxSlugLength).Error("slug_too_long"),
		validation.By(slugRule),
	)
}

// ValidateNewsQuery validates listing parameters. Zero limit means default.
func (v *Validator) ValidateNewsQuery(q *NewsQuery) error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Category,
			validation.By(categoryCodeRule),
		),
		validation.Field(&q.Limit,
			validation.Min(0).Error("limit_must_be_positive"),
			validation.Max(domain.MaxPageSize).Error("limit_too_large"),
		),
		validation.Field(&q.Offset,
			validation.Min(0).Error("offset_must_be_positive"),
		),
	)
}

// ValidateCategory accepts an empty value or any well-formed category
// code. Codes missing from the category table are allowed; they display
// as "other".
func (v *Validator) ValidateCategory(code string) error {
	return validation.Validate(code, validation.By(categoryCodeRule))
}

func slugRule(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !slug.IsSlug(s) {
		return validation.NewError("invalid_slug_format", "invalid slug format")
	}
	return nil
}

func categoryCodeRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	code := category.Normalize(s)
	if code == "" || len(code) > maxCategoryLength || !slug.IsSlug(code) {
		return validation.NewError("invalid_category", "invalid category code")
	}
	return nil
}

// FieldErrors flattens ozzo validation errors into field -> reason.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
		return out
	}
	out["value"] = err.Error()
	return out
}
