package repository

import (
	"patientedu/internal/app/ds"
)

func (r *Repository) ListSections() ([]ds.Section, error) {
	var sections []ds.Section
	err := r.db.Order("id").Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *Repository) GetSection(id uint) (*ds.Section, error) {
	var section ds.Section
	if err := r.db.First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *Repository) CreateSection(s *ds.Section) error {
	return r.db.Create(s).Error
}

func (r *Repository) UpdateSection(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Section{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteSection удаляет раздел; болезни и их файлы каскадом удаляет БД.
func (r *Repository) DeleteSection(id uint) error {
	return r.db.Delete(&ds.Section{}, id).Error
}

// SectionFilePaths возвращает ключи всех файлов болезней раздела.
// Нужно, чтобы убрать объекты из хранилища до каскадного удаления строк.
func (r *Repository) SectionFilePaths(sectionID uint) ([]string, error) {
	var paths []string
	err := r.db.Model(&ds.FileAttachment{}).
		Joins("JOIN diseases ON diseases.id = file_attachments.disease_id").
		Where("diseases.section_id = ?", sectionID).
		Pluck("file_attachments.file_path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}
