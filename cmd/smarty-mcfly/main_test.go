package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints help and errors", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), nil, strings.NewReader(""), &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no arguments provided")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("unknown command is a parse error", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"bogus"}, strings.NewReader(""), &stdout, &stderr)
		require.Error(t, err)
	})

	t.Run("two source flags fail at parse time", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		args := []string{"learn", "python", "requests", "--url", "https://example.com", "--man", "tar"}
		err := m.Run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)
		require.Error(t, err)
	})

	t.Run("learn requires topic and subtopic", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"learn"}, strings.NewReader(""), &stdout, &stderr)
		require.Error(t, err)
	})
}
