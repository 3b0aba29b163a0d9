package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/pipeline/extract"
)

func TestExtractDocument_PlainText(t *testing.T) {
	text, conf, err := extract.ExtractDocument(context.Background(), []byte("Hello   World\n\n\nSecond paragraph"), domain.MimePlain)
	require.NoError(t, err)
	assert.Equal(t, 1.0, conf)
	assert.Equal(t, "Hello World\n\nSecond paragraph", text)
}

func TestExtractDocument_UnsupportedFormat(t *testing.T) {
	_, _, err := extract.ExtractDocument(context.Background(), []byte("data"), "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestExtractDocument_EmptyPlainTextFails(t *testing.T) {
	_, _, err := extract.ExtractDocument(context.Background(), []byte("   \n\t  "), domain.MimePlain)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
}
