package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/conversation"
	"loan-assistant/internal/customer"
	"loan-assistant/internal/document"
	"loan-assistant/internal/i18n"
)

func newTestEngine(t *testing.T, out *printer) *conversation.Engine {
	t.Helper()
	engine, err := conversation.NewEngine(nil, conversation.Deps{
		Directory: customer.NewDemoDirectory(),
		Extractor: document.NewMockExtractor(document.WithLatency(0, 0)),
		Scheduler: conversation.NoDelay{},
		Sink:      out,
	}, logger.NewTestLogger(t))
	require.NoError(t, err)
	return engine
}

func TestRun_Conversation(t *testing.T) {
	var buf bytes.Buffer
	out := &printer{out: &buf, catalog: i18n.NewCatalog()}
	engine := newTestEngine(t, out)

	input := strings.NewReader("Amit\n9876543212\n/quit\n")
	require.NoError(t, run(context.Background(), engine, out, input, "en"))

	text := buf.String()
	assert.Contains(t, text, "[Master Agent]")
	assert.Contains(t, text, "Namaste! Welcome to Tata Capital.")
	assert.Contains(t, text, "Thank you, Amit!")
	assert.Contains(t, text, "  > 9876543210 | 9876543212 | 9876543214")
}

func TestRun_SwitchLanguage(t *testing.T) {
	var buf bytes.Buffer
	out := &printer{out: &buf, catalog: i18n.NewCatalog()}
	engine := newTestEngine(t, out)

	input := strings.NewReader("/lang fr\n/lang hi\n")
	require.NoError(t, run(context.Background(), engine, out, input, "en"))

	assert.Contains(t, buf.String(), "supported languages: en, hi")
	assert.Contains(t, buf.String(), "[मास्टर एजेंट]")
	assert.Equal(t, i18n.Hindi, out.language)
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line, cmd, arg string
	}{
		{"/upload  slip.pdf", "/upload", "slip.pdf"},
		{"/QUIT", "/quit", ""},
		{"hello there", "", "hello there"},
	}
	for _, tt := range tests {
		cmd, arg := splitCommand(tt.line)
		assert.Equal(t, tt.cmd, cmd, tt.line)
		assert.Equal(t, tt.arg, arg, tt.line)
	}
}

func TestReadUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slip.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	upload, err := readUpload(path)
	require.NoError(t, err)
	assert.Equal(t, "slip.pdf", upload.FileName)
	assert.Equal(t, "application/pdf", upload.ContentType)
	assert.Equal(t, int64(8), upload.Size)

	_, err = readUpload("")
	assert.Error(t, err)
	_, err = readUpload(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
