package repository

import (
	"patientedu/internal/app/ds"
)

func (r *Repository) ListBanners() ([]ds.Banner, error) {
	var banners []ds.Banner
	err := r.db.Order("id").Find(&banners).Error
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *Repository) GetBanner(id uint) (*ds.Banner, error) {
	var banner ds.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *Repository) CreateBanner(b *ds.Banner) error {
	return r.db.Create(b).Error
}

func (r *Repository) UpdateBanner(id uint, fields map[string]interface{}) error {
	return r.db.Model(&ds.Banner{}).Where("id = ?", id).Updates(fields).Error
}

func (r *Repository) DeleteBanner(id uint) error {
	return r.db.Delete(&ds.Banner{}, id).Error
}
