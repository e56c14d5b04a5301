package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/logger"
)

// CSVSource reads item metadata from a CSV file and joins each row on name
// with an optional collection-mapping CSV. A mapped collection replaces any
// collections column in the metadata file; unmapped items get no collection.
type CSVSource struct {
	ItemsPath       string
	CollectionsPath string
}

// NewCSVSource creates a CSV source. collectionsPath may be empty.
func NewCSVSource(itemsPath, collectionsPath string) *CSVSource {
	return &CSVSource{ItemsPath: itemsPath, CollectionsPath: collectionsPath}
}

// Records loads and merges both files.
func (s *CSVSource) Records(ctx context.Context) ([]domain.Record, error) {
	log := logger.FromContext(ctx)

	var mapping map[string]domain.Collection
	if s.CollectionsPath == "" {
		log.Debug(LogMsgNoCollectionSource)
	} else {
		m, err := s.readCollections(ctx)
		if err != nil {
			return nil, err
		}
		mapping = m
	}

	records, err := s.readItems(ctx, mapping)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgLoadedCSV, LogFieldPath, s.ItemsPath, LogFieldRecords, len(records))
	return records, nil
}

// csvTable is a header-indexed reader over one CSV file
type csvTable struct {
	path   string
	r      *csv.Reader
	cols   map[string]int
	closer io.Closer
}

func openTable(path string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtOpenFile, path, err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf(ErrFmtReadHeader, path, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		// Tolerate a UTF-8 BOM and stray whitespace from spreadsheet exports
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return &csvTable{path: path, r: r, cols: cols, closer: f}, nil
}

func (t *csvTable) Close() error {
	return t.closer.Close()
}

func (t *csvTable) require(names ...string) error {
	for _, n := range names {
		if _, ok := t.cols[n]; !ok {
			return fmt.Errorf(ErrFmtMissingColumn, ErrMissingColumn, t.path, n)
		}
	}
	return nil
}

func (t *csvTable) has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// field returns the trimmed value of column name in row, or "" when absent
func (t *csvTable) field(row []string, name string) string {
	i, ok := t.cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// each calls fn for every data row; line numbers count the header as line 1
func (t *csvTable) each(ctx context.Context, fn func(line int, row []string) error) error {
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := t.r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf(ErrFmtReadRow, t.path, line, err)
		}
		if isBlankRow(row) {
			continue
		}
		if err := fn(line, row); err != nil {
			return err
		}
	}
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (s *CSVSource) readCollections(ctx context.Context) (map[string]domain.Collection, error) {
	t, err := openTable(s.CollectionsPath)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	if err := t.require(ColumnName, ColumnCollections); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	mapping := make(map[string]domain.Collection)
	err = t.each(ctx, func(line int, row []string) error {
		name := t.field(row, ColumnName)
		if _, dup := mapping[name]; dup {
			log.Debug(LogMsgDuplicateMapping, LogFieldName, name, LogFieldLine, line)
			return nil
		}
		mapping[name] = domain.Collection(t.field(row, ColumnCollections))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mapping, nil
}

func (s *CSVSource) readItems(ctx context.Context, mapping map[string]domain.Collection) ([]domain.Record, error) {
	t, err := openTable(s.ItemsPath)
	if err != nil {
		return nil, err
	}
	defer t.Close()

	if err := t.require(ColumnID, ColumnName, ColumnMinFloat, ColumnMaxFloat, ColumnRarity); err != nil {
		return nil, err
	}

	statTrakCol := ColumnStatTrak
	if !t.has(statTrakCol) {
		statTrakCol = ColumnStatTrakAlt
	}

	log := logger.FromContext(ctx)
	var records []domain.Record
	err = t.each(ctx, func(line int, row []string) error {
		rowErr := func(field, value string, cause error) error {
			return fmt.Errorf(ErrFmtRowField, ErrMalformedRow, t.path, line, field, value, cause)
		}

		rec := domain.Record{
			ID:     t.field(row, ColumnID),
			Name:   t.field(row, ColumnName),
			Weapon: t.field(row, ColumnWeapon),
		}

		raw := t.field(row, ColumnRarity)
		rarity, err := domain.ParseRarity(raw)
		if err != nil {
			return rowErr(ColumnRarity, raw, err)
		}
		rec.Rarity = rarity

		raw = t.field(row, ColumnMinFloat)
		if rec.MinFloat, err = strconv.ParseFloat(raw, 64); err != nil {
			return rowErr(ColumnMinFloat, raw, err)
		}
		raw = t.field(row, ColumnMaxFloat)
		if rec.MaxFloat, err = strconv.ParseFloat(raw, 64); err != nil {
			return rowErr(ColumnMaxFloat, raw, err)
		}

		if raw = t.field(row, statTrakCol); raw != "" {
			if rec.StatTrak, err = strconv.ParseBool(raw); err != nil {
				return rowErr(statTrakCol, raw, err)
			}
		}

		crates, ok := ParseCrateList(t.field(row, ColumnCrates))
		if !ok {
			log.Debug(LogMsgUnparseableCrates, LogFieldName, rec.Name, LogFieldLine, line)
		}
		rec.Crates = crates

		if mapping != nil {
			rec.Collection = mapping[rec.Name]
		} else {
			rec.Collection = domain.Collection(t.field(row, ColumnCollections))
		}

		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
