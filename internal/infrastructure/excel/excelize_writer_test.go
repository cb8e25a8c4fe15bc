package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/investarise/summit-api/internal/infrastructure/excel"
)

// Ida y vuelta: lo escrito debe poder releerse con la misma librería,
// cabecera en la fila 1 y datos desde la fila 2 en el orden de entrada.
func TestWrite_IdaYVuelta(t *testing.T) {
	writer := excel.NewExcelizeWriter()

	header := []string{"ID", "Full Name", "Email"}
	rows := [][]string{
		{"u1", "Ann Lee", "ann@x.com"},
		{"u2", "Bo Kim", "N/A"},
	}

	content, err := writer.Write("Users", header, rows)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Users"}, f.GetSheetList(), "la hoja por defecto se renombra")

	got, err := f.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, got, 3, "cabecera + una fila por registro")
	assert.Equal(t, header, got[0])
	assert.Equal(t, rows[0], got[1])
	assert.Equal(t, rows[1], got[2])
}

func TestWrite_SinRegistros(t *testing.T) {
	writer := excel.NewExcelizeWriter()

	content, err := writer.Write("Visitors", []string{"Email"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Visitors")
	require.NoError(t, err)
	require.Len(t, got, 1, "solo la cabecera")
	assert.Equal(t, []string{"Email"}, got[0])
}
