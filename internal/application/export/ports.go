package export

// WorkbookWriter serializa una hoja tabular (cabecera + filas) a un
// workbook binario. Lo implementa la infraestructura (Excelize).
type WorkbookWriter interface {
	Write(sheet string, header []string, rows [][]string) ([]byte, error)
}
