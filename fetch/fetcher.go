// Package fetch executes fetch plans: it dispatches each retrieval action to
// the right capability (HTTP, man lookup, go doc) and handles primary-to-
// fallback recovery for sources that declare a fallback.
package fetch

import (
	"context"

	smarty "github.com/bayne/smarty-mcfly"
)

// Ensure Fetcher implements smarty.Fetcher at compile time.
var _ smarty.Fetcher = (*Fetcher)(nil)

// Fetcher executes fetch plans against injected capabilities. Only the
// capabilities a plan actually needs must be non-nil: a web-only deployment
// can leave Man and GoDoc unset.
type Fetcher struct {
	HTTP  smarty.HTTPFetcher
	Man   smarty.ManSource
	GoDoc smarty.DocTool
}

// Fetch runs the plan's primary action, then the fallback if the primary
// fails and a fallback is declared. Empty-but-successful output never
// triggers the fallback. When both fail, the surfaced error keeps the
// primary's classification and notes the fallback failure.
func (f *Fetcher) Fetch(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error) {
	raw, err := f.execute(ctx, plan.Primary)
	if err == nil || plan.Fallback == nil {
		return raw, err
	}

	raw, fberr := f.execute(ctx, *plan.Fallback)
	if fberr != nil {
		return nil, smarty.Errorf(smarty.ErrorCode(err), "%s (fallback also failed: %s)",
			smarty.ErrorMessage(err), smarty.ErrorMessage(fberr))
	}
	return raw, nil
}

func (f *Fetcher) execute(ctx context.Context, action smarty.Action) (*smarty.RawDocument, error) {
	var content []byte
	var err error

	switch action.Kind {
	case smarty.ActionHTTPGet:
		if f.HTTP == nil {
			return nil, smarty.Errorf(smarty.EINTERNAL, "no HTTP fetcher configured")
		}
		content, err = f.HTTP.Fetch(ctx, action.Target)
	case smarty.ActionManPage:
		if f.Man == nil {
			return nil, smarty.Errorf(smarty.EINTERNAL, "no man source configured")
		}
		content, err = f.Man.Source(ctx, action.Target)
	case smarty.ActionGoDoc:
		if f.GoDoc == nil {
			return nil, smarty.Errorf(smarty.EINTERNAL, "no doc tool configured")
		}
		content, err = f.GoDoc.Doc(ctx, action.Target)
	default:
		return nil, smarty.Errorf(smarty.EINTERNAL, "unknown action kind %d", action.Kind)
	}
	if err != nil {
		return nil, err
	}

	return &smarty.RawDocument{Content: content, Kind: action.ContentKind()}, nil
}
