package ds

// Disease — образовательная тема внутри раздела. Description хранит
// свободный текст с переносами строк и выделением **жирным**.
type Disease struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(300);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	SectionID   uint   `gorm:"not null;index" json:"section_id"`

	Section Section `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"-"`
}
