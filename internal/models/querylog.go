package models

import "time"

// SearchQueryLogEntry representa uma busca registrada (append-only)
type SearchQueryLogEntry struct {
	ID           string    `json:"id,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	Query        string    `json:"query"`
	Timestamp    time.Time `json:"timestamp"`
	ResultsCount int       `json:"results_count"`
}

// SearchVolume representa o volume agregado de uma query
type SearchVolume struct {
	Query string    `json:"query"`
	Count int       `json:"count"`
	Date  time.Time `json:"date"`
}
