// Package search — поиск и фильтрация по агрегированному дереву портала.
// Везде простое подстрочное сравнение без учёта регистра, без ранжирования.
package search

import (
	"regexp"
	"strings"

	"patientedu/internal/app/catalog"
)

// Варианты совпадения для глобального поиска. Ровно три исхода.
const (
	MatchName        = "name"
	MatchDescription = "description"
	MatchBoth        = "both"
)

// Result — одна найденная болезнь в порядке обхода дерева.
type Result struct {
	SectionID   string `json:"section_id"`
	SectionName string `json:"section_name"`
	DiseaseID   string `json:"disease_id"`
	DiseaseName string `json:"disease_name"`
	Match       string `json:"match"`
}

// Global ищет по названию и описанию каждой болезни всех разделов.
// Пустой или пробельный запрос даёт пустой результат: отсутствие запроса
// клиент показывает иначе, чем «ничего не найдено».
func Global(tree *catalog.Tree, query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	results := []Result{}
	if q == "" {
		return results
	}

	for _, section := range tree.Sections {
		for _, disease := range section.Diseases {
			nameMatch := strings.Contains(strings.ToLower(disease.Name), q)
			descMatch := strings.Contains(strings.ToLower(disease.Description), q)
			if !nameMatch && !descMatch {
				continue
			}

			match := MatchDescription
			if nameMatch && descMatch {
				match = MatchBoth
			} else if nameMatch {
				match = MatchName
			}

			results = append(results, Result{
				SectionID:   section.ID,
				SectionName: section.Name,
				DiseaseID:   disease.ID,
				DiseaseName: disease.Name,
				Match:       match,
			})
		}
	}

	return results
}

// FilterSection отфильтровывает болезни одного раздела по тому же
// подстрочному правилу. Пустой запрос возвращает полный список —
// в отличие от Global это локальный фильтр, а не поиск.
func FilterSection(section *catalog.Section, query string) []catalog.Disease {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return section.Diseases
	}

	filtered := []catalog.Disease{}
	for _, disease := range section.Diseases {
		if strings.Contains(strings.ToLower(disease.Name), q) ||
			strings.Contains(strings.ToLower(disease.Description), q) {
			filtered = append(filtered, disease)
		}
	}
	return filtered
}

// Highlight оборачивает каждое вхождение запроса в <mark>...</mark>.
// Спецсимволы запроса экранируются, так что "." и "*" ищутся буквально.
// Регистр при сравнении не учитывается, но в выводе сохраняется исходный.
func Highlight(text, query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return text
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(q))
	if err != nil {
		return text
	}

	return re.ReplaceAllStringFunc(text, func(m string) string {
		return "<mark>" + m + "</mark>"
	})
}
