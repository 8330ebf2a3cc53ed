package repository

import (
	"patientedu/internal/app/ds"
)

func (r *Repository) ListTopics() ([]ds.AboutTopic, error) {
	var topics []ds.AboutTopic
	err := r.db.Order("id").Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *Repository) GetTopic(id uint) (*ds.AboutTopic, error) {
	var topic ds.AboutTopic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *Repository) CreateTopic(t *ds.AboutTopic) error {
	return r.db.Create(t).Error
}

func (r *Repository) UpdateTopic(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.AboutTopic{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteTopic(id uint) error {
	return r.db.Delete(&ds.AboutTopic{}, id).Error
}
