package mock

import (
	"context"

	smarty "github.com/bayne/smarty-mcfly"
)

var _ smarty.TopicStore = (*TopicStore)(nil)

// TopicStore is a mock implementation of smarty.TopicStore.
type TopicStore struct {
	StoreFn func(ctx context.Context, projectRoot string, doc *smarty.Document) (string, error)
}

func (s *TopicStore) Store(ctx context.Context, projectRoot string, doc *smarty.Document) (string, error) {
	return s.StoreFn(ctx, projectRoot, doc)
}

var _ smarty.Learner = (*Learner)(nil)

// Learner is a mock implementation of smarty.Learner.
type Learner struct {
	LearnFn func(ctx context.Context, req smarty.LearnRequest) (string, error)
}

func (l *Learner) Learn(ctx context.Context, req smarty.LearnRequest) (string, error) {
	return l.LearnFn(ctx, req)
}
