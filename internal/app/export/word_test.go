package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patientedu/internal/app/catalog"
)

func TestWordDocument(t *testing.T) {
	disease := &catalog.Disease{
		ID:          "10",
		Name:        "Гипертония",
		Description: "Normal **bold** tail\nSecond line",
	}

	data, err := WordDocument(disease)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// .docx — это zip: сигнатура PK
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestWordDocumentEmptyDescription(t *testing.T) {
	data, err := WordDocument(&catalog.Disease{Name: "X"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
