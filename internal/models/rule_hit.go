package models

import "time"

// RuleHit represents a per-term match count.
type RuleHit struct {
	RuleSet    string
	Term       string
	Count      int64
	LastSeenAt time.Time
}
