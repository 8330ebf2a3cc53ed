package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patientedu/internal/app/ds"
)

func testSource() Source {
	return Source{
		Sections: []ds.Section{
			{ID: 1, Name: "Кардиология", Icon: "❤️", ColorClass: "red"},
			{ID: 2, Name: "Неврология", Icon: "🧠", ColorClass: "purple"},
		},
		Diseases: []ds.Disease{
			{ID: 10, Name: "Гипертония", Description: "давление", SectionID: 1},
			{ID: 11, Name: "Мигрень", Description: "головная боль", SectionID: 2},
			{ID: 12, Name: "Аритмия", Description: "ритм", SectionID: 1},
		},
		Files: []ds.FileAttachment{
			{ID: 100, Name: "Памятка", FilePath: "pamyatka-abc1.pdf", FileType: "pdf", DiseaseID: 10},
			{ID: 101, Name: "Схема", FilePath: "shema-def2.png", FileType: "image", DiseaseID: 10},
		},
		Banners: []ds.Banner{
			{ID: 1, Title: "День открытых дверей", ImagePath: "banner-1.jpg"},
		},
		Topics: []ds.AboutTopic{
			{ID: 1, Name: "История", Description: "основана в 1957"},
		},
	}
}

func TestBuildTreeNesting(t *testing.T) {
	tree := BuildTree(testSource(), nil)

	require.Len(t, tree.Sections, 2)
	cardio := tree.Sections[0]
	assert.Equal(t, "1", cardio.ID)
	require.Len(t, cardio.Diseases, 2)

	// файлы лежат ровно под своей болезнью
	assert.Len(t, cardio.Diseases[0].Files, 2)
	assert.Empty(t, cardio.Diseases[1].Files)
	assert.Empty(t, tree.Sections[1].Diseases[0].Files)
	assert.Equal(t, "100", cardio.Diseases[0].Files[0].ID)
}

func TestBuildTreeOrderPreserved(t *testing.T) {
	// порядок детей повторяет порядок исходного среза, не БД-ключи
	src := testSource()
	src.Diseases = []ds.Disease{
		{ID: 12, Name: "Аритмия", SectionID: 1},
		{ID: 10, Name: "Гипертония", SectionID: 1},
	}
	tree := BuildTree(src, nil)

	names := []string{}
	for _, d := range tree.Sections[0].Diseases {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Аритмия", "Гипертония"}, names)
}

func TestBuildTreeOrphansDropped(t *testing.T) {
	src := testSource()
	src.Diseases = append(src.Diseases, ds.Disease{ID: 99, Name: "Сирота", SectionID: 777})
	src.Files = append(src.Files, ds.FileAttachment{ID: 999, Name: "Ничей", DiseaseID: 888})

	tree := BuildTree(src, nil)

	for _, s := range tree.Sections {
		for _, d := range s.Diseases {
			assert.NotEqual(t, "99", d.ID)
			for _, f := range d.Files {
				assert.NotEqual(t, "999", f.ID)
			}
		}
	}
}

func TestBuildTreeColorFallback(t *testing.T) {
	src := testSource()
	src.Sections[0].ColorClass = "vantablack"
	tree := BuildTree(src, nil)
	assert.Equal(t, "default", tree.Sections[0].ColorClass)
	assert.Equal(t, "purple", tree.Sections[1].ColorClass)
}

func TestBuildTreeResolvesRelativePaths(t *testing.T) {
	resolve := func(p string) string { return "http://minio/uploads/" + p }
	src := testSource()
	src.Files[0].FilePath = "http://cdn.example.com/x.pdf"

	tree := BuildTree(src, resolve)

	files := tree.Sections[0].Diseases[0].Files
	// абсолютная ссылка проходит как есть, относительная резолвится
	assert.Equal(t, "http://cdn.example.com/x.pdf", files[0].DataURL)
	assert.Equal(t, "http://minio/uploads/shema-def2.png", files[1].DataURL)
	assert.Equal(t, "http://minio/uploads/banner-1.jpg", tree.Banners[0].ImageURL)
}

func TestBuildTreeEmptySource(t *testing.T) {
	tree := BuildTree(Source{}, nil)
	assert.NotNil(t, tree.Sections)
	assert.Empty(t, tree.Sections)
	assert.Empty(t, tree.Banners)
	assert.Empty(t, tree.Topics)
}
