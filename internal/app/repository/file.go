package repository

import (
	"patientedu/internal/app/ds"
)

func (r *Repository) ListFiles() ([]ds.FileAttachment, error) {
	var files []ds.FileAttachment
	err := r.db.Order("id").Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *Repository) GetFile(id uint) (*ds.FileAttachment, error) {
	var file ds.FileAttachment
	if err := r.db.First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *Repository) CreateFile(f *ds.FileAttachment) error {
	return r.db.Create(f).Error
}

func (r *Repository) DeleteFile(id uint) error {
	return r.db.Delete(&ds.FileAttachment{}, id).Error
}
