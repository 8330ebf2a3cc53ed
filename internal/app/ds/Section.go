package ds

// Section — раздел портала (медицинское направление).
// ColorClass должен входить в фиксированную палитру, иначе клиент
// откатывается на ColorClassDefault.
type Section struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(200);not null" json:"name"`
	Icon       string `gorm:"type:varchar(50)" json:"icon"`
	ColorClass string `gorm:"column:color_class;type:varchar(30)" json:"color_class"`
}

const ColorClassDefault = "default"

// colorClasses — допустимые ключи палитры разделов.
var colorClasses = map[string]bool{
	"red":     true,
	"orange":  true,
	"yellow":  true,
	"green":   true,
	"emerald": true,
	"teal":    true,
	"cyan":    true,
	"sky":     true,
	"indigo":  true,
	"purple":  true,
	"pink":    true,
}

// NormalizeColorClass возвращает класс палитры или значение по умолчанию.
func NormalizeColorClass(c string) string {
	if colorClasses[c] {
		return c
	}
	return ColorClassDefault
}
