// Package shell serves the dashboard shell and its navigation actions.
package shell

// NavSignals are the client signals the navigation actions read.
type NavSignals struct {
	// AIOpen is the requested assistant state. Nil toggles the current one.
	AIOpen *bool `json:"aiOpen,omitempty"`
}
