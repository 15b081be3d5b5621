package corpus

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Parse decodes a corpus document. ext selects the format (".csv", ".tsv", ".xlsx",
// ".xls", ".yaml", ".yml", ".json").
func Parse(ext string, data []byte, cols Columns) ([]Row, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return parseDelimited(data, ',', cols)
	case ".tsv":
		return parseDelimited(data, '\t', cols)
	case ".xlsx":
		return parseXLSX(data, cols)
	case ".xls":
		return parseXLS(data, cols)
	case ".yaml", ".yml":
		return parseYAML(data, cols)
	case ".json":
		return parseJSON(data, cols)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func parseDelimited(data []byte, comma rune, cols Columns) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.withDefaults().Question)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus header: %w", err)
	}
	t := table{header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus row: %w", err)
		}
		t.rows = append(t.rows, record)
	}
	return t.toRows(cols)
}

// parseXLSX reads the first sheet; row 1 is the header.
func parseXLSX(data []byte, cols Columns) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.withDefaults().Question)
	}
	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx sheet %q: %w", sheets[0], err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.withDefaults().Question)
	}
	return table{header: grid[0], rows: grid[1:]}.toRows(cols)
}

// parseXLS reads the first sheet of a legacy BIFF workbook; row 1 is the header.
func parseXLS(data []byte, cols Columns) ([]Row, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xls corpus: %w", err)
	}
	if wb.GetNumberSheets() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.withDefaults().Question)
	}
	sheet, err := wb.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, fmt.Errorf("failed to read xls sheet: %v", err)
	}
	rows := sheet.GetRows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.withDefaults().Question)
	}
	t := table{header: xlsValues(rows[0].GetCols())}
	for _, r := range rows[1:] {
		t.rows = append(t.rows, xlsValues(r.GetCols()))
	}
	return t.toRows(cols)
}

func xlsValues(cells []structure.CellData) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		val := c.GetString()
		if val == "" {
			if num := c.GetFloat64(); num != 0 {
				val = strconv.FormatFloat(num, 'f', -1, 64)
			} else if in := c.GetInt64(); in != 0 {
				val = strconv.FormatInt(in, 10)
			}
		}
		out = append(out, val)
	}
	return out
}

func parseYAML(data []byte, cols Columns) ([]Row, error) {
	var recs records
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to parse yaml corpus: %w", err)
	}
	return recs.toRows(cols)
}

func parseJSON(data []byte, cols Columns) ([]Row, error) {
	var recs records
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to parse json corpus: %w", err)
	}
	return recs.toRows(cols)
}
