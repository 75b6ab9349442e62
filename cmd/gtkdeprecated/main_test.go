package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/symaudit/cmd/gtkdeprecated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "gtkdeprecated")
	assert.Contains(t, stdout.String(), "--url")
}

func TestMain_Run_RejectsUnknownIndex(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--index", "fuzzy"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_OverHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<dt><a class="link">gtk_foo</a>, function in Foo</dt>`))
	}))
	defer server.Close()

	source := filepath.Join(t.TempDir(), "os.c")
	require.NoError(t, os.WriteFile(source, []byte("GTK_LOAD_FUNCTION(fp, gtk_foo)\nGDK_LOAD_FUNCTION(fp, gdk_bar)\n"), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{source, "--url", server.URL, "--index", "structured"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "gtk_foo\n", stdout.String())
}
