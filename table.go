package enneabot

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/atomic"
)

// ClassificationRow maps one normalized answer combination to a basic type.
// Rows are immutable after load.
type ClassificationRow struct {
	Q11    string // single digit 1-3
	Q12    string // single digit 1-3
	Q21    string // single digit 1-3
	Triple string // "a-b-c", digits 1-9, order-preserving
	Type   string // basic type 1-9
}

// ClassificationTable holds the answer-combination → type mapping, built once
// at startup from a tab-separated source and read-only afterwards.
//
// Duplicate composite keys are kept in load order and Lookup always returns
// the first loaded row; later duplicates are dead data by policy, not an
// error. Until a load completes, Ready reports false and callers must treat
// the table as unavailable.
type ClassificationTable struct {
	rows  []ClassificationRow
	index map[string][]int
	ready atomic.Bool
}

// NewClassificationTable returns an empty, not-yet-ready table.
func NewClassificationTable() *ClassificationTable {
	return &ClassificationTable{index: make(map[string][]int)}
}

// LoadFile loads the table from a tab-separated file and marks it ready.
func (t *ClassificationTable) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open table source: %w", err)
	}
	defer f.Close()

	if err := t.LoadReader(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadFileAsync loads the table in the background. The load runs once and is
// never retried; done, when non-nil, receives the load error (nil on
// success). Failures are also logged.
func (t *ClassificationTable) LoadFileAsync(path string, done func(error)) {
	go func() {
		err := t.LoadFile(path)
		if err != nil {
			log.Printf("[Table] load failed: %v", err)
		}
		if done != nil {
			done(err)
		}
	}()
}

// LoadReader parses tab-separated rows from r and marks the table ready.
//
// The header row names the columns; header names tolerate a BOM prefix and
// surrounding whitespace. Required columns are Q1-1, Q1-2, Q2-1 and Q3_order,
// plus Basic_Type (with Result as a named fallback) for the type. A data row
// is accepted only when all four normalized key fields and the type are
// non-empty; everything else is silently discarded and only counted.
func (t *ClassificationTable) LoadReader(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[cleanInput(name)] = i
	}

	discarded := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}

		q11 := NormalizeChoice13(field(record, cols, "Q1-1"))
		q12 := NormalizeChoice13(field(record, cols, "Q1-2"))
		q21 := NormalizeChoice13(field(record, cols, "Q2-1"))
		triple := NormalizeTriple(field(record, cols, "Q3_order"))
		basicType := cleanInput(field(record, cols, "Basic_Type"))
		if basicType == "" {
			basicType = cleanInput(field(record, cols, "Result"))
		}

		if q11 == "" || q12 == "" || q21 == "" || triple == "" || basicType == "" {
			discarded++
			continue
		}

		t.rows = append(t.rows, ClassificationRow{
			Q11: q11, Q12: q12, Q21: q21, Triple: triple, Type: basicType,
		})
		key := CompositeKey(q11, q12, q21, triple)
		t.index[key] = append(t.index[key], len(t.rows)-1)
	}

	t.ready.Store(true)
	log.Printf("[Table] loaded %d rows (%d discarded)", len(t.rows), discarded)
	return nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// Ready reports whether a load has completed. While false, all
// classification requests must be rejected as transiently unavailable.
func (t *ClassificationTable) Ready() bool {
	return t.ready.Load()
}

// Len returns the number of accepted rows, or 0 while the table is loading.
func (t *ClassificationTable) Len() int {
	if !t.ready.Load() {
		return 0
	}
	return len(t.rows)
}

// Lookup resolves the four normalized answers to a classification row.
// When several rows share the composite key, the first loaded one wins.
func (t *ClassificationTable) Lookup(q11, q12, q21, triple string) (*ClassificationRow, bool) {
	if !t.ready.Load() {
		return nil, false
	}
	idxs := t.index[CompositeKey(q11, q12, q21, triple)]
	if len(idxs) == 0 {
		return nil, false
	}
	return &t.rows[idxs[0]], true
}
