package ds

// Banner — промо-баннер на главной, не привязан к разделам.
type Banner struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(300);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImagePath   string `gorm:"column:image_path;type:varchar(500);not null" json:"image_path"`
}
