// Package export — выгрузка болезни в Word и каталога в Excel.
package export

import "strings"

// Span — фрагмент строки описания: текст и признак жирного начертания.
type Span struct {
	Text string
	Bold bool
}

// ParseSpans разбирает одну строку описания на фрагменты по маркерам
// **...**. Маркер без пары — обычный текст, не ошибка.
func ParseSpans(line string) []Span {
	spans := []Span{}
	rest := line

	for {
		open := strings.Index(rest, "**")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open+2:], "**")
		if end < 0 {
			// незакрытый маркер — оставшийся текст буквально
			break
		}

		if open > 0 {
			spans = append(spans, Span{Text: rest[:open]})
		}
		spans = append(spans, Span{Text: rest[open+2 : open+2+end], Bold: true})
		rest = rest[open+2+end+2:]
	}

	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}

// unsafeFilenameChars — символы, запрещённые в именах файлов.
const unsafeFilenameChars = `/\?%*:|"<>`

// SafeFilename заменяет каждый небезопасный символ имени на дефис
// один к одному и добавляет расширение документа.
func SafeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(unsafeFilenameChars, r) {
			b.WriteRune('-')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String() + ".docx"
}
