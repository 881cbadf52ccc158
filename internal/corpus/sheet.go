package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column identifies a job-sheet column by meaning.
type Column string

// Recognized job-sheet columns.
const (
	ColumnID               Column = "id"
	ColumnTitle            Column = "title"
	ColumnCompany          Column = "company"
	ColumnLocation         Column = "location"
	ColumnDescription      Column = "description"
	ColumnResponsibilities Column = "responsibilities"
	ColumnQualifications   Column = "qualifications"
	ColumnPreferred        Column = "preferred"
	ColumnSkills           Column = "skills"
	ColumnEducation        Column = "education"
	ColumnExperience       Column = "experience"
	ColumnCompensation     Column = "compensation"
)

// headerAliases maps normalized header cells to columns.
var headerAliases = map[string]Column{
	"id": ColumnID, "job id": ColumnID,
	"job title": ColumnTitle, "title": ColumnTitle, "position": ColumnTitle, "role": ColumnTitle,
	"company": ColumnCompany, "company name": ColumnCompany, "employer": ColumnCompany,
	"location": ColumnLocation,
	"description": ColumnDescription, "job description": ColumnDescription,
	"responsibilities": ColumnResponsibilities, "duties": ColumnResponsibilities,
	"qualifications": ColumnQualifications, "requirements": ColumnQualifications,
	"preferred qualifications": ColumnPreferred, "preferred": ColumnPreferred, "nice to have": ColumnPreferred,
	"skills": ColumnSkills,
	"education": ColumnEducation,
	"experience": ColumnExperience,
	"compensation": ColumnCompensation, "salary": ColumnCompensation, "benefits": ColumnCompensation,
}

// sectionLabels are the header lines each list column is written under, in
// output order.
var sectionLabels = []struct {
	column Column
	label  string
}{
	{ColumnLocation, "Location:"},
	{ColumnResponsibilities, "Responsibilities"},
	{ColumnQualifications, "Qualifications"},
	{ColumnPreferred, "Preferred Qualifications"},
	{ColumnSkills, "Skills"},
	{ColumnEducation, "Education"},
	{ColumnExperience, "Experience"},
	{ColumnCompensation, "Compensation"},
}

// IsSheet reports whether path names a tabular job sheet.
func IsSheet(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".csv":
		return true
	}
	return false
}

// ReadSheet reads an xlsx (first sheet) or csv job sheet and returns one
// synthetic job document per data row. The first row names the columns.
func ReadSheet(path string) ([]Document, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, &LoadError{Path: path, Message: "unsupported sheet type"}
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []Document{}, nil
	}

	columns := mapColumns(rows[0])
	if _, ok := columns[ColumnTitle]; !ok {
		if _, ok := columns[ColumnDescription]; !ok {
			return nil, &LoadError{Path: path, Message: "sheet has neither a title nor a description column"}
		}
	}

	docs := make([]Document, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := record(columns, row)
		if rec[ColumnTitle] == "" && rec[ColumnDescription] == "" {
			continue
		}
		source := fmt.Sprintf("%s#row%d", path, i+2)
		id := rec[ColumnID]
		if id == "" {
			id = DocumentID(source)
		}
		docs = append(docs, Document{ID: id, Source: source, Text: JobText(rec)})
	}
	return docs, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to open workbook", Cause: err}
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read sheet", Cause: err}
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to open csv", Cause: err}
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse csv", Cause: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func mapColumns(header []string) map[Column]int {
	columns := make(map[Column]int)
	for i, cell := range header {
		key := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(cell, "_", " ")), " "))
		if col, ok := headerAliases[key]; ok {
			if _, dup := columns[col]; !dup {
				columns[col] = i
			}
		}
	}
	return columns
}

func record(columns map[Column]int, row []string) map[Column]string {
	rec := make(map[Column]string, len(columns))
	for col, i := range columns {
		if i < len(row) {
			rec[col] = strings.TrimSpace(row[i])
		}
	}
	return rec
}

// JobText renders a sheet row as a job posting the parser can segment:
// labeled title and company lines, the description, then one headed section
// per list column.
func JobText(rec map[Column]string) string {
	var sb strings.Builder
	if v := rec[ColumnTitle]; v != "" {
		sb.WriteString("Job Title:\n" + v + "\n")
	}
	if v := rec[ColumnCompany]; v != "" {
		sb.WriteString("Company:\n" + v + "\n")
	}
	if v := rec[ColumnDescription]; v != "" {
		sb.WriteString(v + "\n")
	}
	for _, s := range sectionLabels {
		if v := rec[s.column]; v != "" {
			sb.WriteString(s.label + "\n" + splitItems(v) + "\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

// splitItems puts semicolon-separated cell items on their own lines.
func splitItems(v string) string {
	if !strings.Contains(v, ";") || strings.Contains(v, "\n") {
		return v
	}
	parts := strings.Split(v, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}
