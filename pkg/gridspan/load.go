package gridspan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/gridspan-go/pkg/gridspan/cellmap"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads merged grids from an Excel file. With opts.Sheet set only that
// sheet is loaded.
func Load(path string, opts Options) (*models.Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	var area models.Rect
	if opts.Range != "" {
		if area, err = parser.ParseRange(opts.Range); err != nil {
			return nil, NewLoadError(opts.Sheet, ComponentRange, err)
		}
	}

	names := f.GetSheetList()
	if opts.Sheet != "" {
		if idx, err := f.GetSheetIndex(opts.Sheet); err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, opts.Sheet)
		}
		names = []string{opts.Sheet}
	}

	log := opts.Log()
	sheets := make(map[string]models.Sheet, len(names))
	for _, name := range names {
		sheet, err := parser.ExtractSheet(f, name, area)
		if err != nil {
			return nil, NewLoadError(name, ComponentRows, err)
		}
		log.WithField("sheet", name).Debugf("loaded %d rows, %d columns, %d merges",
			len(sheet.Rows), len(sheet.Columns), len(sheet.Merges))
		sheets[name] = *sheet
	}

	return &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}

// LoadSheet reads a single grid: opts.Sheet, or the first sheet of the file.
func LoadSheet(path string, opts Options) (*models.Sheet, error) {
	if opts.Sheet == "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		list := f.GetSheetList()
		f.Close()
		if len(list) == 0 {
			return nil, ErrSheetNotFound
		}
		opts.Sheet = list[0]
	}

	wb, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	sheet := wb.Sheets[opts.Sheet]
	return &sheet, nil
}

// Save writes sheet into the Excel file at path, creating the file when it
// does not exist. Values land on the anchors; spans become worksheet merges.
func Save(path string, sheet models.Sheet, opts Options) error {
	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		if f, err = excelize.OpenFile(path); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	} else {
		f = excelize.NewFile()
		if sheet.Name != "" && sheet.Name != "Sheet1" {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return NewLoadError(sheet.Name, ComponentWrite, err)
			}
		}
	}
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = f.GetSheetName(0)
	}

	cells := cellmap.Build(sheet.Rows, sheet.Columns)
	log := opts.Log()
	for _, w := range cells.Warnings() {
		log.WithField("sheet", name).Warn(w.String())
	}
	if err := parser.WriteSheet(f, name, sheet.Origin, cells); err != nil {
		return NewLoadError(name, ComponentWrite, err)
	}
	return f.SaveAs(path)
}
