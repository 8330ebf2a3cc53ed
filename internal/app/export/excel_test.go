package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"patientedu/internal/app/catalog"
)

func TestCatalogWorkbook(t *testing.T) {
	tree := &catalog.Tree{
		Sections: []catalog.Section{
			{
				ID:   "1",
				Name: "Кардиология",
				Diseases: []catalog.Disease{
					{
						ID:   "10",
						Name: "Гипертония",
						Files: []catalog.File{
							{ID: "100", Name: "Памятка", Type: "pdf", Description: "брошюра"},
							{ID: "101", Name: "Схема", Type: "image"},
						},
					},
					{ID: "11", Name: "Аритмия", Files: []catalog.File{}},
				},
			},
		},
	}

	data, err := CatalogWorkbook(tree)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Каталог")
	require.NoError(t, err)

	// шапка + две строки файлов + строка болезни без файлов
	require.Len(t, rows, 4)
	assert.Equal(t, "Раздел", rows[0][0])
	assert.Equal(t, []string{"Кардиология", "Гипертония", "Памятка", "pdf", "брошюра"}, rows[1])
	assert.Equal(t, "Аритмия", rows[3][1])
}
