package learn_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
	"github.com/bayne/smarty-mcfly/fs"
	"github.com/bayne/smarty-mcfly/learn"
	"github.com/bayne/smarty-mcfly/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearner_Learn(t *testing.T) {
	t.Parallel()

	t.Run("runs the full pipeline and returns the stored path", func(t *testing.T) {
		t.Parallel()

		fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		var stored *smarty.Document

		learner := &learn.Learner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error) {
					assert.Equal(t, smarty.ActionHTTPGet, plan.Primary.Kind)
					assert.Equal(t, "https://example.com/docs", plan.Primary.Target)
					return &smarty.RawDocument{Kind: smarty.KindHTML, Content: []byte("<title>Docs</title><p>hi</p>")}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(raw *smarty.RawDocument) (string, error) {
					return "# Docs\n\nhi\n", nil
				},
			},
			Titles: &mock.TitleExtractor{
				TitleFn: func(raw *smarty.RawDocument) string { return "Docs" },
			},
			Store: &mock.TopicStore{
				StoreFn: func(ctx context.Context, projectRoot string, doc *smarty.Document) (string, error) {
					stored = doc
					assert.Equal(t, "/proj", projectRoot)
					return "/proj/.smarts/python/requests.md", nil
				},
			},
			Now: func() time.Time { return fixed },
		}

		path, err := learner.Learn(context.Background(), smarty.LearnRequest{
			Topic:       "python",
			Subtopic:    "requests",
			Source:      smarty.Source{Kind: smarty.SourceWeb, Value: "https://example.com/docs"},
			ProjectRoot: "/proj",
		})
		require.NoError(t, err)
		assert.Equal(t, "/proj/.smarts/python/requests.md", path)

		require.NotNil(t, stored)
		assert.Equal(t, "python", stored.Topic)
		assert.Equal(t, "requests", stored.Subtopic)
		assert.Equal(t, "Docs", stored.Title)
		assert.Equal(t, "# Docs\n\nhi\n", stored.Content)
		assert.Equal(t, smarty.HashContent("# Docs\n\nhi\n"), stored.ContentHash)
		assert.Equal(t, fixed, stored.FetchedAt)
	})

	t.Run("rejects unsafe names before any fetch", func(t *testing.T) {
		t.Parallel()

		learner := &learn.Learner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error) {
					t.Fatal("fetch should not run for invalid names")
					return nil, nil
				},
			},
		}

		_, err := learner.Learn(context.Background(), smarty.LearnRequest{
			Topic:    "a/b",
			Subtopic: "c",
			Source:   smarty.Source{Kind: smarty.SourceWeb, Value: "https://example.com"},
		})
		require.Error(t, err)
		assert.Equal(t, smarty.EINVALID, smarty.ErrorCode(err))
	})

	t.Run("annotates resolver errors with the stage name", func(t *testing.T) {
		t.Parallel()

		learner := &learn.Learner{}

		_, err := learner.Learn(context.Background(), smarty.LearnRequest{
			Topic:    "python",
			Subtopic: "requests",
			Source:   smarty.Source{Kind: smarty.SourceWeb, Value: "not-a-url"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolve:")
		assert.Equal(t, smarty.EINVALID, smarty.ErrorCode(err))
	})

	t.Run("fetch failure leaves the store untouched", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		learner := &learn.Learner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error) {
					return nil, smarty.Errorf(smarty.ENETWORK, "fetching https://bad-url: no such host")
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(raw *smarty.RawDocument) (string, error) {
					t.Fatal("convert should not run after fetch failure")
					return "", nil
				},
			},
			Store: fs.NewTopicStore(),
		}

		_, err := learner.Learn(context.Background(), smarty.LearnRequest{
			Topic:       "python",
			Subtopic:    "requests",
			Source:      smarty.Source{Kind: smarty.SourceWeb, Value: "https://bad-url"},
			ProjectRoot: root,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch:")
		assert.Equal(t, smarty.ENETWORK, smarty.ErrorCode(err))

		// No manifest, no files: the failed operation wrote nothing.
		_, statErr := os.Stat(filepath.Join(root, fs.SmartsDirName))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("annotates convert errors with the stage name", func(t *testing.T) {
		t.Parallel()

		learner := &learn.Learner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error) {
					return &smarty.RawDocument{Kind: smarty.KindMan, Content: []byte(".TH TAR 1")}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(raw *smarty.RawDocument) (string, error) {
					return "", smarty.Errorf(smarty.ETOOLMISSING, "pandoc is not installed")
				},
			},
		}

		_, err := learner.Learn(context.Background(), smarty.LearnRequest{
			Topic:    "unix",
			Subtopic: "tar",
			Source:   smarty.Source{Kind: smarty.SourceMan, Value: "tar"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "convert:")
		assert.Equal(t, smarty.ETOOLMISSING, smarty.ErrorCode(err))
	})

	t.Run("annotates store errors with the stage name", func(t *testing.T) {
		t.Parallel()

		learner := &learn.Learner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error) {
					return &smarty.RawDocument{Kind: smarty.KindText, Content: []byte("docs")}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(raw *smarty.RawDocument) (string, error) { return "docs", nil },
			},
			Store: &mock.TopicStore{
				StoreFn: func(ctx context.Context, projectRoot string, doc *smarty.Document) (string, error) {
					return "", smarty.Errorf(smarty.EIO, "disk full")
				},
			},
		}

		_, err := learner.Learn(context.Background(), smarty.LearnRequest{
			Topic:    "go",
			Subtopic: "chi",
			Source:   smarty.Source{Kind: smarty.SourceGodoc, Value: "github.com/go-chi/chi/v5"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store:")
		assert.Equal(t, smarty.EIO, smarty.ErrorCode(err))
	})

	t.Run("works without a title extractor", func(t *testing.T) {
		t.Parallel()

		learner := &learn.Learner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, plan smarty.FetchPlan) (*smarty.RawDocument, error) {
					return &smarty.RawDocument{Kind: smarty.KindText, Content: []byte("docs")}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(raw *smarty.RawDocument) (string, error) { return "docs", nil },
			},
			Store: &mock.TopicStore{
				StoreFn: func(ctx context.Context, projectRoot string, doc *smarty.Document) (string, error) {
					assert.Empty(t, doc.Title)
					return "/p/.smarts/go/chi.md", nil
				},
			},
		}

		_, err := learner.Learn(context.Background(), smarty.LearnRequest{
			Topic:    "go",
			Subtopic: "chi",
			Source:   smarty.Source{Kind: smarty.SourceGodoc, Value: "github.com/go-chi/chi/v5"},
		})
		require.NoError(t, err)
	})
}
