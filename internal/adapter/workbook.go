// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/xuri/excelize/v2"
)

const (
	// maxSheetNameLength is the sheet name limit of the XLSX format.
	maxSheetNameLength = 31

	defaultSheetName = "Sheet1"
	untitledSheet    = "Campaign"
)

// WorkbookMaxCellLength is the largest cell text the workbook sink stores.
const WorkbookMaxCellLength = excelize.TotalCellChars

var sheetNameReplacer = strings.NewReplacer(
	":", " ", `\`, " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")",
)

// workbookSinkAdapter keeps every sink as a sheet of one local XLSX file.
// The sheet name is the sink id. The file is opened, changed and saved on
// every call, so edits made in a spreadsheet program between syncs are kept.
type workbookSinkAdapter struct {
	path string

	mu sync.Mutex

	logger *logger.Logger
}

// NewWorkbookSinkAdapter builds a [SinkAdapter] writing to the workbook at
// path. The file and its directory are created on the first sink creation.
func NewWorkbookSinkAdapter(path string, logger *logger.Logger) (SinkAdapter, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("workbook path is required")
	}
	return &workbookSinkAdapter{path: path, logger: logger}, nil
}

// SetCredential implements [SinkAdapter]; the local workbook needs none.
func (w *workbookSinkAdapter) SetCredential(models.Credential) {}

// CreateSink implements [SinkAdapter] by adding a sheet named after title.
// Characters the format forbids are replaced and a numeric suffix keeps
// names unique.
func (w *workbookSinkAdapter) CreateSink(ctx context.Context, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", sinkError("create sheet", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, fresh, err := w.open()
	if err != nil {
		return "", sinkError("open workbook", err)
	}
	defer f.Close()

	name := sheetName(title)
	if fresh {
		// a new file already holds one empty default sheet; it becomes the sink
		if name != defaultSheetName {
			if err = f.SetSheetName(defaultSheetName, name); err != nil {
				return "", sinkError("create sheet", err)
			}
		}
	} else {
		name = uniqueSheetName(f, name)
		index, newErr := f.NewSheet(name)
		if newErr != nil {
			return "", sinkError("create sheet", newErr)
		}
		f.SetActiveSheet(index)
	}

	if err = w.save(f); err != nil {
		return "", sinkError("save workbook", err)
	}

	w.logger.Debug().
		Str("func", "workbookSinkAdapter.CreateSink").
		Str("sheet", name).
		Msg("sheet created")

	return name, nil
}

// ReadHeaderRow implements [SinkAdapter]. Trailing empty cells are dropped;
// an empty first row reads as no header.
func (w *workbookSinkAdapter) ReadHeaderRow(ctx context.Context, sinkID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, sinkError("read header", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.openExisting(sinkID)
	if err != nil {
		return nil, sinkError("read header", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sinkID)
	if err != nil {
		return nil, sinkError("read header", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := trimTrailingEmpty(rows[0])
	if len(header) == 0 {
		return nil, nil
	}
	return header, nil
}

// WriteHeaderRow implements [SinkAdapter]. The row is written in bold; a
// sheet whose first row is not empty is left untouched and [ErrConflict] is
// returned.
func (w *workbookSinkAdapter) WriteHeaderRow(ctx context.Context, sinkID string, row []string) error {
	if err := ctx.Err(); err != nil {
		return sinkError("write header", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.openExisting(sinkID)
	if err != nil {
		return sinkError("write header", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sinkID)
	if err != nil {
		return sinkError("write header", err)
	}
	if len(rows) > 0 && len(trimTrailingEmpty(rows[0])) > 0 {
		return sinkError("write header", ErrConflict)
	}

	if err = f.SetSheetRow(sinkID, "A1", &row); err != nil {
		return sinkError("write header", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		err = f.SetRowStyle(sinkID, 1, 1, style)
	}
	if err != nil {
		return sinkError("style header", err)
	}

	if err = w.save(f); err != nil {
		return sinkError("save workbook", err)
	}
	return nil
}

// AppendRows implements [SinkAdapter]. Rows are written below the last
// non-empty row of the sheet and saved together.
func (w *workbookSinkAdapter) AppendRows(ctx context.Context, sinkID string, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return sinkError("append rows", err)
	}
	if len(rows) == 0 {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.openExisting(sinkID)
	if err != nil {
		return sinkError("append rows", err)
	}
	defer f.Close()

	existing, err := f.GetRows(sinkID)
	if err != nil {
		return sinkError("append rows", err)
	}

	next := len(existing) + 1
	for i := range rows {
		cell, cellErr := excelize.CoordinatesToCellName(1, next+i)
		if cellErr != nil {
			return sinkError("append rows", cellErr)
		}
		if err = f.SetSheetRow(sinkID, cell, &rows[i]); err != nil {
			return sinkError("append rows", err)
		}
	}

	if err = w.save(f); err != nil {
		return sinkError("save workbook", err)
	}

	w.logger.Debug().
		Str("func", "workbookSinkAdapter.AppendRows").
		Str("sheet", sinkID).
		Int("first_row", next).
		Int("rows", len(rows)).
		Msg("rows appended")

	return nil
}

// open returns the workbook, or a new one (fresh == true) when the file does
// not exist yet.
func (w *workbookSinkAdapter) open() (*excelize.File, bool, error) {
	if _, err := os.Stat(w.path); errors.Is(err, os.ErrNotExist) {
		return excelize.NewFile(), true, nil
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}

func (w *workbookSinkAdapter) openExisting(sheet string) (*excelize.File, error) {
	if _, err := os.Stat(w.path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, err
	}

	if index, _ := f.GetSheetIndex(sheet); index < 0 {
		f.Close()
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return f, nil
}

func (w *workbookSinkAdapter) save(f *excelize.File) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(w.path)
}

func sheetName(title string) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(title))
	name = strings.Trim(name, "'")
	if name == "" {
		name = untitledSheet
	}
	return truncateRunes(name, maxSheetNameLength)
}

func uniqueSheetName(f *excelize.File, base string) string {
	taken := make(map[string]struct{})
	for _, name := range f.GetSheetList() {
		taken[strings.ToLower(name)] = struct{}{}
	}

	if _, ok := taken[strings.ToLower(base)]; !ok {
		return base
	}

	for n := 2; ; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate := truncateRunes(base, maxSheetNameLength-len(suffix)) + suffix
		if _, ok := taken[strings.ToLower(candidate)]; !ok {
			return candidate
		}
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func trimTrailingEmpty(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}
