package units

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"srbrowser/internal/models"
)

// dataMarker flags the row after which actual unit definitions begin.
// Everything before it is header noise and is never treated as data.
const dataMarker = "&&UNITS"

// Field positions inside a data row. Only these five matter to the
// browser; the rest of the row belongs to the game.
const (
	fieldID      = 0
	fieldName    = 1
	fieldClass   = 2
	fieldPicnum  = 3
	fieldRegions = 12
)

// Parse reads unit records from a default.unit stream. The format is
// deliberately forgiving: rows before the &&UNITS marker are skipped,
// comment rows (// ...) and malformed rows are dropped silently, and
// short rows simply have empty regions. Parse never fails; the worst
// case is an empty result.
func Parse(r io.Reader) []models.Unit {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = false

	var units []models.Unit
	started := false

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A broken row is not fatal, the reader resumes on the next line.
			continue
		}
		if len(row) == 0 {
			continue
		}

		if !started {
			if strings.Contains(row[0], dataMarker) {
				started = true
			}
			continue
		}

		if len(row) < 4 {
			continue
		}

		// A data row starts with a plain number. This one check also
		// rejects // comments, blank rows and repeated marker rows.
		idField := strings.TrimSpace(row[fieldID])
		if !isDigits(idField) {
			continue
		}

		id, err := strconv.Atoi(idField)
		if err != nil {
			continue
		}

		class, ok := intFieldOrZero(row[fieldClass])
		if !ok {
			continue
		}
		picnum, ok := intFieldOrZero(row[fieldPicnum])
		if !ok {
			continue
		}

		regions := ""
		if len(row) > fieldRegions {
			regions = strings.TrimSpace(row[fieldRegions])
		}

		units = append(units, models.Unit{
			ID:       id,
			Name:     strings.TrimSpace(row[fieldName]),
			Class:    class,
			Picnum:   picnum,
			Category: models.CategoryForClass(class),
			Regions:  regions,
		})
	}

	return units
}

// ParseFile parses a unit file from disk. A missing file yields an empty
// slice plus a reportable error so the caller can point the user at the
// settings screen instead of showing an empty list with no explanation.
func ParseFile(path string) ([]models.Unit, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("unit file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open unit file: %w", err)
	}
	defer file.Close()

	return Parse(file), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// intFieldOrZero parses an integer field where blank means zero.
// The second return is false when the field holds non-numeric garbage,
// which drops the whole row.
func intFieldOrZero(field string) (int, bool) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, true
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return n, true
}
