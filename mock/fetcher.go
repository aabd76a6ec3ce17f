package mock

import (
	"context"

	smarty "github.com/bayne/smarty-mcfly"
)

var _ smarty.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of smarty.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error)
}

func (f *Fetcher) Fetch(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error) {
	return f.FetchFn(ctx, plan)
}

var _ smarty.HTTPFetcher = (*HTTPFetcher)(nil)

// HTTPFetcher is a mock implementation of smarty.HTTPFetcher.
type HTTPFetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

var _ smarty.ManSource = (*ManSource)(nil)

// ManSource is a mock implementation of smarty.ManSource.
type ManSource struct {
	SourceFn func(ctx context.Context, page string) ([]byte, error)
}

func (m *ManSource) Source(ctx context.Context, page string) ([]byte, error) {
	return m.SourceFn(ctx, page)
}

var _ smarty.DocTool = (*DocTool)(nil)

// DocTool is a mock implementation of smarty.DocTool.
type DocTool struct {
	DocFn func(ctx context.Context, pkg string) ([]byte, error)
}

func (d *DocTool) Doc(ctx context.Context, pkg string) ([]byte, error) {
	return d.DocFn(ctx, pkg)
}
