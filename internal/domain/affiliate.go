package domain

import "time"

// AffiliateClick is a single outbound click towards a comparison partner.
type AffiliateClick struct {
	ID         string    `json:"id"`
	Partner    string    `json:"partner"`
	Source     string    `json:"source"`
	Category   string    `json:"category"`
	UserID     string    `json:"user_id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ValidAffiliateSources lists the surfaces that render partner CTAs.
var ValidAffiliateSources = []string{
	"opportunity_card", "opportunity_detail", "news_article", "comparator", "dashboard", "email",
}
