package contact

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// Column indexes of an import sheet; -1 when the column is absent.
type columns struct {
	name, phone, email, notes int
}

var headerAliases = map[string]string{
	"name":     "name",
	"nombre":   "name",
	"phone":    "phone",
	"telefono": "phone",
	"celular":  "phone",
	"movil":    "phone",
	"tel":      "phone",
	"email":    "email",
	"e-mail":   "email",
	"correo":   "email",
	"notes":    "notes",
	"notas":    "notes",
}

var accentFolder = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n")

// readRows loads every row of a CSV or XLSX upload. The format is chosen by
// the file extension.
func readRows(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	default:
		return nil, domain.NewValidationError("file", "formato no soportado: use .csv o .xlsx")
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = sniffDelimiter(data)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, domain.NewValidationError("file", "CSV inválido: "+err.Error())
	}
	return rows, nil
}

// sniffDelimiter picks ';' when the header line uses it more than ','.
// Spreadsheets exported with a Spanish locale use ';'.
func sniffDelimiter(data []byte) rune {
	line, _ := bufio.NewReader(bytes.NewReader(data)).ReadString('\n')
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.NewValidationError("file", "XLSX inválido")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewValidationError("file", "no contiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return rows, nil
}

// mapHeader resolves column positions from the header row.
func mapHeader(header []string) (columns, error) {
	cols := columns{name: -1, phone: -1, email: -1, notes: -1}
	for i, h := range header {
		key := accentFolder.Replace(strings.ToLower(strings.TrimSpace(h)))
		switch headerAliases[key] {
		case "name":
			cols.name = i
		case "phone":
			cols.phone = i
		case "email":
			cols.email = i
		case "notes":
			cols.notes = i
		}
	}

	var missing []string
	if cols.name < 0 {
		missing = append(missing, "nombre")
	}
	if cols.phone < 0 {
		missing = append(missing, "teléfono")
	}
	if len(missing) > 0 {
		return cols, domain.NewValidationError("file", "faltan columnas: "+strings.Join(missing, ", "))
	}
	return cols, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optionalCell(row []string, i int) *string {
	v := cell(row, i)
	if v == "" {
		return nil
	}
	return &v
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
