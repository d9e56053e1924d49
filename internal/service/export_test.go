package service

import "time"

func (s *ContentService) SetClock(now func() time.Time) { s.now = now }

func (s *SitemapService) SetClock(now func() time.Time) { s.now = now }

func (t *AffiliateTracker) SetClock(now func() time.Time) { t.now = now }

// ExpireSession runs the manager's side of a poll that saw the token expire.
func (m *SessionManager) ExpireSession(userID string, t *SubscriptionTracker) bool {
	return m.remove(userID, t)
}
