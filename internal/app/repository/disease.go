package repository

import (
	"patientedu/internal/app/ds"
)

func (r *Repository) ListDiseases() ([]ds.Disease, error) {
	var diseases []ds.Disease
	err := r.db.Order("id").Find(&diseases).Error
	if err != nil {
		return nil, err
	}
	return diseases, nil
}

func (r *Repository) ListDiseasesBySection(sectionID uint) ([]ds.Disease, error) {
	var diseases []ds.Disease
	err := r.db.Where("section_id = ?", sectionID).Order("id").Find(&diseases).Error
	if err != nil {
		return nil, err
	}
	return diseases, nil
}

func (r *Repository) GetDisease(id uint) (*ds.Disease, error) {
	var disease ds.Disease
	if err := r.db.First(&disease, id).Error; err != nil {
		return nil, err
	}
	return &disease, nil
}

func (r *Repository) CreateDisease(d *ds.Disease) error {
	return r.db.Create(d).Error
}

func (r *Repository) UpdateDisease(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Disease{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteDisease удаляет болезнь; файлы каскадом удаляет БД.
func (r *Repository) DeleteDisease(id uint) error {
	return r.db.Delete(&ds.Disease{}, id).Error
}

// DiseaseFilePaths возвращает ключи файлов болезни для очистки хранилища.
func (r *Repository) DiseaseFilePaths(diseaseID uint) ([]string, error) {
	var paths []string
	err := r.db.Model(&ds.FileAttachment{}).
		Where("disease_id = ?", diseaseID).
		Pluck("file_path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}
