package export

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"patientedu/internal/app/catalog"
)

// portalTitle — шапка каждого выгружаемого документа.
const portalTitle = "Портал обучения пациентов"

// WordDocument собирает .docx по болезни: шапка, название заголовком,
// затем по абзацу на каждую строку описания с учётом **жирных** фрагментов.
func WordDocument(disease *catalog.Disease) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	header := doc.AddParagraph()
	header.Justification("center")
	header.AddText(portalTitle).Size("20").Color("888888")

	title := doc.AddParagraph()
	title.Justification("center")
	title.AddText(disease.Name).Size("36").Bold()

	// пустой абзац-отбивка между заголовком и текстом
	doc.AddParagraph()

	for _, line := range strings.Split(disease.Description, "\n") {
		para := doc.AddParagraph()
		for _, span := range ParseSpans(line) {
			run := para.AddText(span.Text)
			if span.Bold {
				run.Bold()
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
