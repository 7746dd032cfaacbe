package pages

import (
	"errors"
	"fmt"
)

// Rule table problems reported by Check.
var (
	ErrAmbiguous   = errors.New("ambiguous rules")
	ErrUnreachable = errors.New("unreachable rule")
)

// Finding is one problem in a rule table.
type Finding struct {
	Key   Key
	Rules []string
	Pages []PageID
	Err   error
}

func (f Finding) Error() string {
	if errors.Is(f.Err, ErrUnreachable) {
		return fmt.Sprintf("%v: %s never wins for any probe", f.Err, f.Rules[0])
	}
	return fmt.Sprintf("%v: %q/%q matches %v -> %v", f.Err, f.Key.Category, f.Key.Item, f.Rules, f.Pages)
}

func (f Finding) Unwrap() error { return f.Err }

// Findings lists every problem the probes expose:
//   - a probe matched by rules that resolve to different pages, where only
//     declaration order decides the outcome;
//   - a rule that is not the first match for any probe.
func (t Table) Findings(probes []Key) []Finding {
	var findings []Finding
	won := make([]bool, len(t))

	for _, k := range probes {
		var matched []int
		for i, rule := range t {
			if rule.Match(k) {
				matched = append(matched, i)
			}
		}
		if len(matched) == 0 {
			continue
		}
		won[matched[0]] = true

		first := t[matched[0]].Page
		for _, i := range matched[1:] {
			if t[i].Page != first {
				findings = append(findings, ambiguity(t, k, matched))
				break
			}
		}
	}

	for i, ok := range won {
		if !ok {
			findings = append(findings, Finding{
				Rules: []string{t[i].Name},
				Pages: []PageID{t[i].Page},
				Err:   ErrUnreachable,
			})
		}
	}
	return findings
}

// Check returns the joined findings for probes, or nil when the table is clean.
func (t Table) Check(probes []Key) error {
	findings := t.Findings(probes)
	if len(findings) == 0 {
		return nil
	}
	errs := make([]error, len(findings))
	for i, f := range findings {
		errs[i] = f
	}
	return errors.Join(errs...)
}

func ambiguity(t Table, k Key, matched []int) Finding {
	f := Finding{Key: k, Err: ErrAmbiguous}
	for _, i := range matched {
		f.Rules = append(f.Rules, t[i].Name)
		f.Pages = append(f.Pages, t[i].Page)
	}
	return f
}
