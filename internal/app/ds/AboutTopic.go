package ds

// AboutTopic — тема статического раздела «О больнице».
// По форме совпадает с Disease, но без файлов и без раздела.
type AboutTopic struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(300);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName — таблица называется по области, а не по структуре.
func (AboutTopic) TableName() string {
	return "about_hospital_topics"
}
