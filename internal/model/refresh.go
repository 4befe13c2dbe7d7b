package model

// RefreshOutcome records the result of one holding's quote refresh inside a
// bulk refresh. Outcomes are never persisted; they only build the response
// report, which preserves the input order of the holdings.
type RefreshOutcome struct {
	Identifier string `json:"identifier"`
	Success    bool   `json:"success"`
}
