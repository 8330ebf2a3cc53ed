package catalog

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"patientedu/internal/app/ds"
)

// Loader отдаёт пять плоских коллекций. Реализуется репозиторием.
type Loader interface {
	ListSections() ([]ds.Section, error)
	ListDiseases() ([]ds.Disease, error)
	ListFiles() ([]ds.FileAttachment, error)
	ListBanners() ([]ds.Banner, error)
	ListTopics() ([]ds.AboutTopic, error)
}

// Service держит текущий снимок дерева. Перестраивается целиком после
// каждой мутации; частичных деревьев не бывает.
type Service struct {
	loader  Loader
	resolve func(string) string

	mu   sync.RWMutex
	tree *Tree
}

func NewService(loader Loader, resolve func(string) string) *Service {
	return &Service{
		loader:  loader,
		resolve: resolve,
		tree:    &Tree{Sections: []Section{}, Banners: []Banner{}, Topics: []Topic{}},
	}
}

// Refresh загружает все пять коллекций и пересобирает дерево.
// Ошибка любой из загрузок отменяет перестройку: остаётся прежний снимок.
func (s *Service) Refresh() error {
	sections, err := s.loader.ListSections()
	if err != nil {
		return err
	}
	diseases, err := s.loader.ListDiseases()
	if err != nil {
		return err
	}
	files, err := s.loader.ListFiles()
	if err != nil {
		return err
	}
	banners, err := s.loader.ListBanners()
	if err != nil {
		return err
	}
	topics, err := s.loader.ListTopics()
	if err != nil {
		return err
	}

	tree := BuildTree(Source{
		Sections: sections,
		Diseases: diseases,
		Files:    files,
		Banners:  banners,
		Topics:   topics,
	}, s.resolve)

	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"sections": len(tree.Sections),
		"diseases": len(diseases),
		"files":    len(files),
	}).Debug("catalog refreshed")

	return nil
}

// Tree возвращает текущий снимок. Дерево после сборки не меняется,
// поэтому указатель можно отдавать наружу.
func (s *Service) Tree() *Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

// FindSection ищет раздел по каноническому идентификатору.
func (t *Tree) FindSection(id string) *Section {
	for i := range t.Sections {
		if t.Sections[i].ID == id {
			return &t.Sections[i]
		}
	}
	return nil
}

// FindDisease ищет болезнь по всему дереву.
func (t *Tree) FindDisease(id string) (*Section, *Disease) {
	for i := range t.Sections {
		for j := range t.Sections[i].Diseases {
			if t.Sections[i].Diseases[j].ID == id {
				return &t.Sections[i], &t.Sections[i].Diseases[j]
			}
		}
	}
	return nil, nil
}
