package models

import "strings"

// SeverityRank buckets a severity label for display purposes (cell colors,
// summary counts). Labels are free-form strings owned by the backend; ranking
// never reorders findings.
type SeverityRank int

const (
	RankUnknown SeverityRank = iota
	RankInfo
	RankLow
	RankMedium
	RankHigh
	RankCritical
)

// RankSeverity maps a severity label to its bucket. Matching is
// case-insensitive and tolerant of common aliases.
func RankSeverity(label string) SeverityRank {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "critical", "crit":
		return RankCritical
	case "high":
		return RankHigh
	case "medium", "moderate", "med":
		return RankMedium
	case "low":
		return RankLow
	case "info", "informational", "none":
		return RankInfo
	default:
		return RankUnknown
	}
}

// String returns a human-readable representation
func (r SeverityRank) String() string {
	switch r {
	case RankCritical:
		return "critical"
	case RankHigh:
		return "high"
	case RankMedium:
		return "medium"
	case RankLow:
		return "low"
	case RankInfo:
		return "info"
	default:
		return "unknown"
	}
}
