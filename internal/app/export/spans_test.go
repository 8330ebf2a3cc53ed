package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpans(t *testing.T) {
	spans := ParseSpans("Normal **bold** tail")
	require.Len(t, spans, 3)
	assert.Equal(t, Span{Text: "Normal "}, spans[0])
	assert.Equal(t, Span{Text: "bold", Bold: true}, spans[1])
	assert.Equal(t, Span{Text: " tail"}, spans[2])
}

func TestParseSpansMultipleBold(t *testing.T) {
	spans := ParseSpans("**a** и **б**")
	assert.Equal(t, []Span{
		{Text: "a", Bold: true},
		{Text: " и "},
		{Text: "б", Bold: true},
	}, spans)
}

func TestParseSpansUnmatchedMarker(t *testing.T) {
	// незакрытый маркер — обычный текст, не ошибка
	assert.Equal(t, []Span{{Text: "no **closing"}}, ParseSpans("no **closing"))
	assert.Equal(t, []Span{{Text: "plain"}}, ParseSpans("plain"))
	assert.Empty(t, ParseSpans(""))
}

func TestParseSpansOnlyBold(t *testing.T) {
	assert.Equal(t, []Span{{Text: "всё", Bold: true}}, ParseSpans("**всё**"))
}

func TestSafeFilename(t *testing.T) {
	// каждый небезопасный символ заменяется дефисом один к одному
	assert.Equal(t, `A-B- -C-.docx`, SafeFilename(`A/B? "C"`))
	assert.Equal(t, "Мигрень.docx", SafeFilename("Мигрень"))
	assert.Equal(t, "a-b-c-d-e-f-g-h-i-j.docx", SafeFilename(`a/b\c?d%e*f:g|h"i<j`))
}

func TestSafeFilenameTrailingAngle(t *testing.T) {
	assert.Equal(t, "x-y-.docx", SafeFilename("x<y>"))
}
