package assessor

import "context"

// Assessor is the cross-package contract for scoring a page. Implementations
// receive the page URL and its HTML and return a Result. The Assessor does
// NOT perform network I/O; the caller supplies the HTML.
type Assessor interface {
	// Assess extracts features from url and html, scores them and explains
	// the score.
	Assess(ctx context.Context, url, html string) (*Result, error)

	// Close releases any resources held by the assessor.
	Close() error
}
