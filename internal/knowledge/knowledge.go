// Package knowledge defines the boundary to the regulatory-directive
// retrieval collaborator. The agent treats the collaborator as opaque and
// must keep working when it is unavailable.
package knowledge

import "context"

// FallbackAnswer is returned by the search_directives tool whenever the
// retrieval collaborator fails or times out. It restates the one rule the
// agent depends on so an audit can still complete.
const FallbackAnswer = "AER Directive 017 requires gas metering equipment to be " +
	"calibrated/proved at least once every 365 days. Temperature and pressure " +
	"compensation devices must be calibrated according to manufacturer " +
	"specifications. (Note: directive knowledge base unavailable)"

// Source names a document that contributed to an answer.
type Source struct {
	Document  string
	Relevance float64
}

// Result is the collaborator's answer to a directive query.
type Result struct {
	Answer  string
	Sources []Source
}

// Searcher is the retrieval collaborator contract. Implementations must
// honour ctx cancellation; callers bound the wait with a deadline.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) (*Result, error)
}
