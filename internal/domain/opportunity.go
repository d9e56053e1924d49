package domain

import "time"

// Opportunity is a refund-eligibility case surfaced to users.
type Opportunity struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Category        string     `json:"category"`
	EstimatedAmount *float64   `json:"estimated_amount,omitempty"`
	Active          bool       `json:"active"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
