package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/dkoester/paideia/internal/domain"
)

// Delimiter used by the provider's catalog exports.
const csvDelimiter = ';'

// LoadCatalog reads a catalog CSV file and returns the normalized
// offerings. Row-level problems are joined into a single error so the
// user can fix the export in one pass.
func LoadCatalog(path string) ([]domain.Offering, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	offerings, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return offerings, nil
}

// ReadCatalog parses catalog CSV data from r.
func ReadCatalog(r io.Reader) ([]domain.Offering, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = csvDelimiter
		cr.TrimLeadingSpace = true
		return cr
	})

	var records []*CatalogRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("parsing rows: %w", err)
	}

	offerings, errs := ConvertRecords(records)
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.New(strings.Join(msgs, "; "))
	}
	if len(offerings) == 0 {
		return nil, errors.New("no offerings found")
	}
	return offerings, nil
}
