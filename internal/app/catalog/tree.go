package catalog

import (
	"strconv"
	"strings"

	"patientedu/internal/app/ds"
)

// Tree — агрегированная модель портала: разделы с вложенными болезнями и
// файлами, плюс баннеры и темы «О больнице». Идентификаторы приведены к
// строкам, имена полей — к camelCase, как их ждёт клиент.
type Tree struct {
	Sections []Section `json:"sections"`
	Banners  []Banner  `json:"banners"`
	Topics   []Topic   `json:"aboutHospitalTopics"`
}

type Section struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Icon       string    `json:"icon"`
	ColorClass string    `json:"colorClass"`
	Diseases   []Disease `json:"diseases"`
}

type Disease struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Files       []File `json:"files"`
}

type File struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	DataURL     string `json:"dataUrl"`
}

type Banner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Source — пять плоских коллекций одного согласованного снимка БД.
type Source struct {
	Sections []ds.Section
	Diseases []ds.Disease
	Files    []ds.FileAttachment
	Banners  []ds.Banner
	Topics   []ds.AboutTopic
}

// canonicalID приводит числовой идентификатор к строковой форме, в которой
// сравниваются все ключи дерева.
func canonicalID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// BuildTree собирает вложенное дерево из плоских коллекций.
// Порядок детей повторяет порядок исходных срезов. Болезнь или файл с
// внешним ключом без загруженного родителя молча выпадает из дерева:
// это допуск на гонки удаления, а не ошибка.
func BuildTree(src Source, resolve func(string) string) *Tree {
	if resolve == nil {
		resolve = func(p string) string { return p }
	}

	filesByDisease := make(map[string][]File)
	for _, f := range src.Files {
		key := canonicalID(f.DiseaseID)
		filesByDisease[key] = append(filesByDisease[key], File{
			ID:          canonicalID(f.ID),
			Name:        f.Name,
			Description: f.Description,
			Type:        f.FileType,
			DataURL:     resolveURL(f.FilePath, resolve),
		})
	}

	diseasesBySection := make(map[string][]Disease)
	for _, d := range src.Diseases {
		key := canonicalID(d.SectionID)
		diseasesBySection[key] = append(diseasesBySection[key], Disease{
			ID:          canonicalID(d.ID),
			Name:        d.Name,
			Description: d.Description,
			Files:       orEmptyFiles(filesByDisease[canonicalID(d.ID)]),
		})
	}

	tree := &Tree{
		Sections: make([]Section, 0, len(src.Sections)),
		Banners:  make([]Banner, 0, len(src.Banners)),
		Topics:   make([]Topic, 0, len(src.Topics)),
	}

	for _, s := range src.Sections {
		tree.Sections = append(tree.Sections, Section{
			ID:         canonicalID(s.ID),
			Name:       s.Name,
			Icon:       s.Icon,
			ColorClass: ds.NormalizeColorClass(s.ColorClass),
			Diseases:   orEmptyDiseases(diseasesBySection[canonicalID(s.ID)]),
		})
	}

	for _, b := range src.Banners {
		tree.Banners = append(tree.Banners, Banner{
			ID:          canonicalID(b.ID),
			Title:       b.Title,
			Description: b.Description,
			ImageURL:    resolveURL(b.ImagePath, resolve),
		})
	}

	for _, t := range src.Topics {
		tree.Topics = append(tree.Topics, Topic{
			ID:          canonicalID(t.ID),
			Name:        t.Name,
			Description: t.Description,
		})
	}

	return tree
}

// resolveURL превращает относительный ключ хранилища в публичный URL.
// Абсолютные ссылки проходят как есть.
func resolveURL(path string, resolve func(string) string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return resolve(path)
}

func orEmptyFiles(files []File) []File {
	if files == nil {
		return []File{}
	}
	return files
}

func orEmptyDiseases(diseases []Disease) []Disease {
	if diseases == nil {
		return []Disease{}
	}
	return diseases
}
