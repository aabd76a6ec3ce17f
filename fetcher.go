package smarty

import "context"

// Fetcher executes a fetch plan: primary action first, fallback (when the
// plan declares one) only after the primary fails. Fallback never triggers
// on empty-but-successful output.
type Fetcher interface {
	Fetch(ctx context.Context, plan FetchPlan) (*RawDocument, error)
}

// HTTPFetcher retrieves the body of a URL. Implementations follow redirects
// and enforce a bounded timeout.
type HTTPFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ManSource reads the roff source of a man page.
// Returns ETOOLMISSING if no man implementation is installed and ENOTFOUND
// if the page does not exist.
type ManSource interface {
	Source(ctx context.Context, page string) ([]byte, error)
}

// DocTool produces plain-text documentation for a package via a local
// language tool (e.g., go doc). Same failure taxonomy as ManSource.
type DocTool interface {
	Doc(ctx context.Context, pkg string) ([]byte, error)
}
