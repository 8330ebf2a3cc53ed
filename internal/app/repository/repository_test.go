package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewWithDB(db), mock
}

func TestListSectionsOrdered(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "name", "icon", "color_class"}).
		AddRow(1, "Кардиология", "❤️", "red").
		AddRow(2, "Неврология", "🧠", "purple")
	mock.ExpectQuery(`SELECT \* FROM "sections" ORDER BY id`).WillReturnRows(rows)

	sections, err := repo.ListSections()
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Кардиология", sections[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDiseasesKeepsForeignKey(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "section_id"}).
		AddRow(10, "Гипертония", "давление", 1)
	mock.ExpectQuery(`SELECT \* FROM "diseases" ORDER BY id`).WillReturnRows(rows)

	diseases, err := repo.ListDiseases()
	require.NoError(t, err)
	require.Len(t, diseases, 1)
	assert.Equal(t, uint(1), diseases[0].SectionID)
}

func TestListDiseasesBySection(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "section_id"}).
		AddRow(10, "Гипертония", "давление", 1).
		AddRow(12, "Аритмия", "ритм", 1)
	mock.ExpectQuery(`SELECT \* FROM "diseases" WHERE section_id = \$1 ORDER BY id`).
		WithArgs(1).
		WillReturnRows(rows)

	diseases, err := repo.ListDiseasesBySection(1)
	require.NoError(t, err)
	require.Len(t, diseases, 2)
	assert.Equal(t, uint(1), diseases[1].SectionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDiseaseNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "diseases"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetDisease(404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListTopicsUsesAboutHospitalTable(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "name", "description"}).
		AddRow(1, "История", "основана в 1957")
	mock.ExpectQuery(`SELECT \* FROM "about_hospital_topics" ORDER BY id`).WillReturnRows(rows)

	topics, err := repo.ListTopics()
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "История", topics[0].Name)
}
