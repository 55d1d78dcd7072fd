package monitor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Geun-Oh/predix/internal/element"
	"github.com/Geun-Oh/predix/internal/filter"
)

// AlertRule counts the elements accepted by a named filter.
type AlertRule struct {
	Name   string
	Filter filter.Filter
	Count  int
}

// AlertEngine evaluates elements against a set of alert rules.
type AlertEngine struct {
	mu    sync.Mutex
	rules []*AlertRule
}

// NewAlertEngine creates an empty alert engine.
func NewAlertEngine() *AlertEngine {
	return &AlertEngine{}
}

// AddRule registers a rule. A nil filter is rejected.
func (e *AlertEngine) AddRule(name string, f filter.Filter) error {
	if f == nil {
		return fmt.Errorf("alert %q: %w", name, filter.ErrNilOperand)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, &AlertRule{Name: name, Filter: f})
	return nil
}

// Len returns the number of registered rules.
func (e *AlertEngine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.rules)
}

// Check evaluates an element against all rules and returns the names of
// the rules it triggered.
func (e *AlertEngine) Check(el element.Element) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var triggered []string
	for _, r := range e.rules {
		if r.Filter.Contains(el) {
			r.Count++
			triggered = append(triggered, r.Name)
		}
	}
	return triggered
}

// Summary returns a formatted summary of alert counts.
func (e *AlertEngine) Summary() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.rules) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("── Alerts ──\n")
	for _, r := range e.rules {
		fmt.Fprintf(&sb, "  %-30s %d hits\n", r.Name, r.Count)
	}
	sb.WriteString("────────────")
	return sb.String()
}

// TotalAlerts returns the total number of alerts triggered.
func (e *AlertEngine) TotalAlerts() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	for _, r := range e.rules {
		total += r.Count
	}
	return total
}
