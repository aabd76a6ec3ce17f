// Package slog provides logging decorators for smarty interfaces using the
// standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
)

// Ensure LoggingLearner implements smarty.Learner at compile time.
var _ smarty.Learner = (*LoggingLearner)(nil)

// LoggingLearner wraps a Learner and logs each operation's outcome.
type LoggingLearner struct {
	next   smarty.Learner
	logger *slog.Logger
}

// NewLoggingLearner creates a logging decorator around next.
func NewLoggingLearner(next smarty.Learner, logger *slog.Logger) *LoggingLearner {
	return &LoggingLearner{next: next, logger: logger}
}

// Learn delegates to the wrapped learner and logs the result.
func (l *LoggingLearner) Learn(ctx context.Context, req smarty.LearnRequest) (string, error) {
	start := time.Now()

	path, err := l.next.Learn(ctx, req)
	if err != nil {
		l.logger.Error("learn",
			"topic", req.Topic,
			"subtopic", req.Subtopic,
			"source", req.Source.Kind.String(),
			"duration", time.Since(start),
			"err", err,
		)
		return "", err
	}

	l.logger.Info("learn",
		"topic", req.Topic,
		"subtopic", req.Subtopic,
		"source", req.Source.Kind.String(),
		"path", path,
		"duration", time.Since(start),
	)
	return path, nil
}
