// Package explain maps a feature vector to human-readable reasons and the
// page elements a UI should highlight.
package explain

import "github.com/raysh454/phishlens/internal/features"

// trigger is one row of the explanation table: when Key passes the
// threshold the reason is added and, if set, the selector is suggested.
type trigger struct {
	Key       features.Key
	Threshold float64
	Inclusive bool
	Reason    string
	Selector  string
}

func (t trigger) fires(v features.Vector) bool {
	x := v.Value(t.Key)
	if t.Inclusive {
		return x >= t.Threshold
	}
	return x > t.Threshold
}

// triggers is evaluated top to bottom; reasons come out in this order.
var triggers = [...]trigger{
	{features.FormActionDiffDomain, 0.5, false, "Form submits to a different domain", "form"},
	{features.FormInsecureHTTP, 0.5, false, "Form submits over insecure HTTP", "form"},
	{features.LogoMismatch, 0.5, false, "Contains brand logo but domain does not match", "img"},
	{features.BrandTextHit, 0.5, false, "Brand name appears in title/meta", ""},
	{features.SuspiciousKW, 0.5, false, "Suspicious keywords present in URL", ""},
	{features.NumPwInputs, 1, true, "Page asks for a password", "input[type='password']"},
	{features.HasIP, 0.5, false, "URL uses an IP address instead of domain", ""},
	{features.NumAt, 1, true, "URL contains '@' which can obfuscate destination", ""},
	{features.SubdomainCount, 3, true, "Unusually many subdomains", ""},
	{features.EntropyPath, 4.0, true, "High URL entropy (random-looking path/query)", ""},
}

// ReasonsFor returns the reasons triggered by v, in table order, and the
// deduplicated selectors those reasons point at. url is accepted so callers
// can pass the page address alongside the vector; the current table is
// decided by the vector alone.
func ReasonsFor(v features.Vector, url string) ([]string, []string) {
	reasons := []string{}
	selectors := []string{}
	seen := map[string]bool{}

	for _, t := range triggers {
		if !t.fires(v) {
			continue
		}
		reasons = append(reasons, t.Reason)
		if t.Selector != "" && !seen[t.Selector] {
			seen[t.Selector] = true
			selectors = append(selectors, t.Selector)
		}
	}
	return reasons, selectors
}

// Template returns the reason text for k, if k has one.
func Template(k features.Key) (string, bool) {
	for _, t := range triggers {
		if t.Key == k {
			return t.Reason, true
		}
	}
	return "", false
}

// Keys returns the keys that can produce a reason, in output order.
func Keys() []features.Key {
	out := make([]features.Key, 0, len(triggers))
	for _, t := range triggers {
		out = append(out, t.Key)
	}
	return out
}

// Severity returns a coarse severity label for a reason key.
func Severity(k features.Key) string {
	switch k {
	// Page is actively collecting or redirecting credentials
	case features.FormActionDiffDomain,
		features.LogoMismatch,
		features.HasIP:
		return "high"

	case features.FormInsecureHTTP,
		features.SuspiciousKW,
		features.NumPwInputs,
		features.NumAt:
		return "medium"

	default:
		return "low"
	}
}
