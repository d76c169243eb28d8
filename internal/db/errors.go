package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrRuleHitNotFound = errors.New("rule hit not found")
)
