// Package learn orchestrates the documentation pipeline: resolve the source
// to a fetch plan, fetch raw content, convert it to markdown, and store it
// under the project's smarts directory.
package learn

import (
	"context"
	"fmt"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
)

// Ensure Learner implements smarty.Learner at compile time.
var _ smarty.Learner = (*Learner)(nil)

// Learner sequences the pipeline stages. It performs no logic beyond
// sequencing and error annotation: each stage error is fatal to the
// operation and surfaces with the stage's name prefixed, classification
// intact. The fetcher's internal primary-to-fallback recovery is the only
// retry anywhere in the pipeline.
type Learner struct {
	Fetcher   smarty.Fetcher
	Converter smarty.Converter
	Titles    smarty.TitleExtractor // optional
	Store     smarty.TopicStore

	// Now returns the current time for the document's FetchedAt stamp.
	// Defaults to time.Now; tests may fix it.
	Now func() time.Time
}

// Learn runs one learn operation and returns the absolute stored path.
// Nothing is written until fetch and convert have both succeeded, so an
// interrupted or failed operation leaves the store untouched.
func (l *Learner) Learn(ctx context.Context, req smarty.LearnRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	plan, err := smarty.Resolve(req.Source)
	if err != nil {
		return "", fmt.Errorf("resolve: %w", err)
	}

	raw, err := l.Fetcher.Fetch(ctx, plan)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	markdown, err := l.Converter.Convert(raw)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}

	var title string
	if l.Titles != nil {
		title = l.Titles.Title(raw)
	}

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	doc := &smarty.Document{
		Topic:       req.Topic,
		Subtopic:    req.Subtopic,
		Title:       title,
		Content:     markdown,
		ContentHash: smarty.HashContent(markdown),
		FetchedAt:   now(),
	}

	path, err := l.Store.Store(ctx, req.ProjectRoot, doc)
	if err != nil {
		return "", fmt.Errorf("store: %w", err)
	}

	return path, nil
}
