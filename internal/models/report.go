package models

import "time"

// Report is the published summary of a finished tournament
type Report struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	GeneratedAt time.Time      `json:"generated_at"`
	Rounds      []*ReportRound `json:"rounds"`
	Standings   []*Standing    `json:"standings"`
	Champion    *Champion      `json:"champion"`
}

// ReportRound is one round as it appears in a Report
type ReportRound struct {
	Round    int      `json:"round"`
	Matches  []*Match `json:"matches"`
	Excluded *Player  `json:"excluded,omitempty"`
}
