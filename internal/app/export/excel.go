package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"patientedu/internal/app/catalog"
)

// catalogHeader — шапка выгрузки каталога.
var catalogHeader = []string{
	"Раздел",
	"Болезнь",
	"Файл",
	"Тип файла",
	"Описание файла",
}

// CatalogWorkbook выгружает всё дерево каталога в книгу Excel:
// по строке на файл, болезни без файлов — отдельной строкой.
func CatalogWorkbook(tree *catalog.Tree) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := "Каталог"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for col, title := range catalogHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(catalogHeader), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	row := 2
	writeRow := func(values []interface{}) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	for _, section := range tree.Sections {
		for _, disease := range section.Diseases {
			if len(disease.Files) == 0 {
				if err := writeRow([]interface{}{section.Name, disease.Name, "", "", ""}); err != nil {
					f.Close()
					return nil, err
				}
				continue
			}
			for _, file := range disease.Files {
				if err := writeRow([]interface{}{section.Name, disease.Name, file.Name, file.Type, file.Description}); err != nil {
					f.Close()
					return nil, err
				}
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
