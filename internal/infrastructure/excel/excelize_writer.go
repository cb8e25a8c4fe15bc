// Package excel implementa el puerto WorkbookWriter usando Excelize:
// una hoja, una fila de cabecera en negrita y una fila por registro,
// con el orden de columnas estable entre corridas.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/investarise/summit-api/internal/application/export"
)

var _ export.WorkbookWriter = (*ExcelizeWriter)(nil)

// ExcelizeWriter serializador xlsx.
type ExcelizeWriter struct{}

// NewExcelizeWriter construye el serializador.
func NewExcelizeWriter() *ExcelizeWriter { return &ExcelizeWriter{} }

// Write genera el workbook: cabecera en la fila 1, datos desde la fila 2.
func (w *ExcelizeWriter) Write(sheet string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	if err := w.writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(header) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(sheet, first, last, headerStyle)
	}

	for i, row := range rows {
		if err := w.writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *ExcelizeWriter) writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("celda (%d,%d): %w", col+1, rowNum, err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("escribir celda %s: %w", cell, err)
		}
	}
	return nil
}
