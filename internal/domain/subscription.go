package domain

import "time"

// SubscriptionPlan is the billing plan of a subscription.
type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "free"
	PlanMonthly SubscriptionPlan = "monthly"
	PlanAnnual  SubscriptionPlan = "annual"
)

// SubscriptionStatus is the lifecycle state reported by the payment provider.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionPending   SubscriptionStatus = "pending"
)

// ValidPlans contains all valid subscription plans.
var ValidPlans = []SubscriptionPlan{PlanFree, PlanMonthly, PlanAnnual}

// ValidSubscriptionStatuses contains all valid subscription statuses.
var ValidSubscriptionStatuses = []SubscriptionStatus{
	SubscriptionActive, SubscriptionCancelled, SubscriptionExpired, SubscriptionPending,
}

// Subscription is the locally cached copy of a user's plan.
type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Plan      SubscriptionPlan   `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartedAt *time.Time         `json:"started_at,omitempty"`
	EndsAt    *time.Time         `json:"ends_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// IsPremium reports whether the subscription grants paid features at now.
// A nil subscription is the free tier.
func (s *Subscription) IsPremium(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.Plan != PlanMonthly && s.Plan != PlanAnnual {
		return false
	}
	if s.Status != SubscriptionActive {
		return false
	}
	return s.EndsAt == nil || s.EndsAt.After(now)
}

// IsValidPlan checks if a plan is valid.
func IsValidPlan(plan SubscriptionPlan) bool {
	for _, p := range ValidPlans {
		if p == plan {
			return true
		}
	}
	return false
}

// IsValidSubscriptionStatus checks if a status is valid.
func IsValidSubscriptionStatus(status SubscriptionStatus) bool {
	for _, s := range ValidSubscriptionStatuses {
		if s == status {
			return true
		}
	}
	return false
}
