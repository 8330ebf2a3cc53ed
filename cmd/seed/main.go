package main

import (
	"fmt"
	"log"

	"patientedu/internal/app/ds"
	"patientedu/internal/app/dsn"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	// Администратор портала
	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := ds.User{Login: "admin", Password: string(hashed), IsModerator: true}
	if err := db.Where("login = ?", admin.Login).First(&ds.User{}).Error; err == gorm.ErrRecordNotFound {
		db.Create(&admin)
		fmt.Println("Создан администратор: admin / admin123")
	}

	// Чистим контент перед заполнением
	db.Exec("DELETE FROM file_attachments")
	db.Exec("DELETE FROM diseases")
	db.Exec("DELETE FROM sections")
	db.Exec("DELETE FROM banners")
	db.Exec("DELETE FROM about_hospital_topics")

	sections := []ds.Section{
		{Name: "Кардиология", Icon: "❤️", ColorClass: "red"},
		{Name: "Неврология", Icon: "🧠", ColorClass: "purple"},
		{Name: "Эндокринология", Icon: "🦋", ColorClass: "sky"},
		{Name: "Пульмонология", Icon: "🫁", ColorClass: "emerald"},
	}
	for i := range sections {
		db.Create(&sections[i])
		fmt.Printf("Создан раздел: %s\n", sections[i].Name)
	}

	diseases := []ds.Disease{
		{
			Name:        "Гипертоническая болезнь",
			Description: "Стойкое повышение артериального давления.\n**Важно:** контролируйте давление дважды в день и ведите дневник измерений.",
			SectionID:   sections[0].ID,
		},
		{
			Name:        "Ишемическая болезнь сердца",
			Description: "Недостаточное кровоснабжение миокарда.\nПри боли за грудиной дольше **20 минут** вызывайте скорую помощь.",
			SectionID:   sections[0].ID,
		},
		{
			Name:        "Мигрень",
			Description: "Приступообразная головная боль.\nВедите дневник приступов и избегайте известных **триггеров**.",
			SectionID:   sections[1].ID,
		},
		{
			Name:        "Сахарный диабет 2 типа",
			Description: "Хроническое нарушение обмена глюкозы.\n**Самоконтроль** уровня сахара — основа лечения.",
			SectionID:   sections[2].ID,
		},
		{
			Name:        "Бронхиальная астма",
			Description: "Хроническое воспаление дыхательных путей.\nВсегда носите с собой **ингалятор** короткого действия.",
			SectionID:   sections[3].ID,
		},
	}
	for i := range diseases {
		db.Create(&diseases[i])
		fmt.Printf("Создана болезнь: %s\n", diseases[i].Name)
	}

	topics := []ds.AboutTopic{
		{Name: "История больницы", Description: "Больница основана в 1957 году и с тех пор непрерывно развивается."},
		{Name: "Режим посещений", Description: "Посещения разрешены ежедневно с 16:00 до 19:00."},
	}
	for i := range topics {
		db.Create(&topics[i])
		fmt.Printf("Создана тема: %s\n", topics[i].Name)
	}

	fmt.Println("\nЗаполнение данных завершено!")
	fmt.Println("🌐 Приложение: http://localhost:8080")
}
