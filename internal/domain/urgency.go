package domain

import (
	"fmt"
	"time"
)

// UrgencyLevel is the display tier derived from a deadline.
type UrgencyLevel string

const (
	UrgencyExpired  UrgencyLevel = "expired"
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyWarning  UrgencyLevel = "warning"
	UrgencyCaution  UrgencyLevel = "caution"
	UrgencyNormal   UrgencyLevel = "normal"
)

// UrgencyUnit tells whether the countdown is shown in hours or days.
type UrgencyUnit string

const (
	UnitHours UrgencyUnit = "hours"
	UnitDays  UrgencyUnit = "days"
)

const (
	criticalDays = 3
	warningDays  = 7
	cautionDays  = 14
)

// Urgency describes how close a deadline is.
type Urgency struct {
	Level     UrgencyLevel `json:"level"`
	DaysLeft  int          `json:"days_left"`
	HoursLeft int          `json:"hours_left"`
	Unit      UrgencyUnit  `json:"unit"`
	Label     string       `json:"label,omitempty"`
}

// ClassifyDeadline buckets the time between now and deadline.
// Days are whole days remaining; hours are shown only inside the last 24h.
func ClassifyDeadline(deadline, now time.Time) Urgency {
	remaining := deadline.Sub(now)
	if remaining < 0 {
		return Urgency{Level: UrgencyExpired, Unit: UnitDays, Label: "Scaduto"}
	}

	days := int(remaining / (24 * time.Hour))
	hours := int(remaining / time.Hour)

	u := Urgency{DaysLeft: days, HoursLeft: hours, Unit: UnitDays}
	switch {
	case days <= criticalDays:
		u.Level = UrgencyCritical
	case days <= warningDays:
		u.Level = UrgencyWarning
	case days <= cautionDays:
		u.Level = UrgencyCaution
	default:
		u.Level = UrgencyNormal
	}

	if remaining <= 24*time.Hour {
		u.Unit = UnitHours
	}
	u.Label = urgencyLabel(u)
	return u
}

// ClassifyOptionalDeadline classifies a nullable deadline. Without a
// deadline the opportunity has no countdown.
func ClassifyOptionalDeadline(deadline *time.Time, now time.Time) Urgency {
	if deadline == nil {
		return Urgency{Level: UrgencyNormal, Unit: UnitDays}
	}
	return ClassifyDeadline(*deadline, now)
}

func urgencyLabel(u Urgency) string {
	if u.Unit == UnitHours {
		switch u.HoursLeft {
		case 0:
			return "Scade tra meno di un'ora"
		case 1:
			return "Scade tra 1 ora"
		default:
			return fmt.Sprintf("Scade tra %d ore", u.HoursLeft)
		}
	}
	if u.DaysLeft == 1 {
		return "Scade tra 1 giorno"
	}
	return fmt.Sprintf("Scade tra %d giorni", u.DaysLeft)
}
