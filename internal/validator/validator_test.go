package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
)

func TestValidateAffiliateClick(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		click   *domain.AffiliateClick
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid click",
			click:   &domain.AffiliateClick{Partner: "facile", Source: "comparator", Category: "energy"},
			wantErr: false,
		},
		{
			name:    "valid click without category",
			click:   &domain.AffiliateClick{Partner: "segugio", Source: "news_article"},
			wantErr: false,
		},
		{
			name:    "valid click with user id",
			click:   &domain.AffiliateClick{Partner: "facile", Source: "dashboard", UserID: "123e4567-e89b-12d3-a456-426614174000"},
			wantErr: false,
		},
		{
			name:    "missing partner",
			click:   &domain.AffiliateClick{Source: "comparator"},
			wantErr: true,
			errMsg:  "partner_required",
		},
		{
			name:    "partner with spaces",
			click:   &domain.AffiliateClick{Partner: "facile it", Source: "comparator"},
			wantErr: true,
			errMsg:  "invalid_partner",
		},
		{
			name:    "unknown source",
			click:   &domain.AffiliateClick{Partner: "facile", Source: "popup"},
			wantErr: true,
			errMsg:  "invalid_source",
		},
		{
			name:    "category missing from the table is kept",
			click:   &domain.AffiliateClick{Partner: "facile", Source: "comparator", Category: "utilities"},
			wantErr: false,
		},
		{
			name:    "category without any slug characters",
			click:   &domain.AffiliateClick{Partner: "facile", Source: "comparator", Category: "!!!"},
			wantErr: true,
			errMsg:  "invalid_category",
		},
		{
			name:    "bad user id",
			click:   &domain.AffiliateClick{Partner: "facile", Source: "comparator", UserID: "42"},
			wantErr: true,
			errMsg:  "invalid_user_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateAffiliateClick(tt.click)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAffiliateClick() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateAffiliateClick() error = %v, want error containing %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"simple", "rimborso-volo-ritardato", false},
		{"digits", "bonus-2025", false},
		{"empty", "", true},
		{"uppercase", "Rimborso", true},
		{"spaces", "rimborso volo", true},
		{"path traversal", "../etc", true},
		{"too long", strings.Repeat("a", maxSlugLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSlug(tt.slug)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSlug(%q) error = %v, wantErr %v", tt.slug, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNewsQuery(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		query   NewsQuery
		wantErr bool
		errMsg  string
	}{
		{"empty", NewsQuery{}, false, ""},
		{"category and paging", NewsQuery{Category: "flight", Limit: 20, Offset: 40}, false, ""},
		{"free-form category", NewsQuery{Category: "Class Action"}, false, ""},
		{"category missing from the table", NewsQuery{Category: "utilities"}, false, ""},
		{"oversized category", NewsQuery{Category: strings.Repeat("a", maxCategoryLength+1)}, true, "invalid_category"},
		{"negative limit", NewsQuery{Limit: -1}, true, "limit_must_be_positive"},
		{"limit too large", NewsQuery{Limit: domain.MaxPageSize + 1}, true, "limit_too_large"},
		{"negative offset", NewsQuery{Offset: -5}, true, "offset_must_be_positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			err := v.ValidateNewsQuery(&q)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNewsQuery() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateNewsQuery() error = %v, want error containing %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateCategory(""); err != nil {
		t.Errorf("empty category should be accepted, got %v", err)
	}
	if err := v.ValidateCategory("bank"); err != nil {
		t.Errorf("known category should be accepted, got %v", err)
	}
	if err := v.ValidateCategory("utilities"); err != nil {
		t.Errorf("category missing from the table should be accepted, got %v", err)
	}
	if err := v.ValidateCategory("???"); err == nil {
		t.Error("category without slug characters should be rejected")
	}
	if err := v.ValidateCategory(strings.Repeat("x", maxCategoryLength+1)); err == nil {
		t.Error("oversized category should be rejected")
	}
}

func TestFieldErrors(t *testing.T) {
	v := NewValidator()

	t.Run("struct errors keyed by json field", func(t *testing.T) {
		err := v.ValidateAffiliateClick(&domain.AffiliateClick{})
		fields := FieldErrors(err)

		if fields["partner"] != "partner_required" {
			t.Errorf("partner = %q, want partner_required", fields["partner"])
		}
		if fields["source"] != "source_required" {
			t.Errorf("source = %q, want source_required", fields["source"])
		}
	})

	t.Run("plain error", func(t *testing.T) {
		fields := FieldErrors(errors.New("boom"))
		if fields["value"] != "boom" {
			t.Errorf("value = %q, want boom", fields["value"])
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if len(FieldErrors(nil)) != 0 {
			t.Error("expected no fields")
		}
	})
}
