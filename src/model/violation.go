package model

import "time"

// FieldValue names an offending column and the value found in it.
type FieldValue struct {
	Name  string `json:"name" yaml:"name"`
	Value Value  `json:"value" yaml:"value"`
}

// Violation is one failed rule for one trade.
type Violation struct {
	Rule       string       `json:"rule" yaml:"rule"`
	TicketHash Value        `json:"ticket_hash" yaml:"ticket_hash"`
	Fields     []FieldValue `json:"fields" yaml:"fields"`
}

// Result collects everything a single rule found, in trade row order.
type Result struct {
	Rule        string      `json:"rule" yaml:"rule"`
	Description string      `json:"description" yaml:"description"`
	Violations  []Violation `json:"violations" yaml:"violations"`
}

// Report is the outcome of one run of the rule battery.
type Report struct {
	RunID      string    `json:"run_id" yaml:"run_id"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	Trades     int       `json:"trades" yaml:"trades"`
	Results    []Result  `json:"results" yaml:"results"`
	Total      int       `json:"total_violations" yaml:"total_violations"`
}
