package enneabot

import (
	"strings"
	"testing"
)

const testTableHeader = "\uFEFFQ1-1\tQ1-2\tQ2-1\tQ3_order\tBasic_Type\n"

func loadTestTable(t *testing.T, tsv string) *ClassificationTable {
	t.Helper()
	table := NewClassificationTable()
	if err := table.LoadReader(strings.NewReader(tsv)); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	return table
}

func TestClassificationTable_LoadAndLookup(t *testing.T) {
	table := loadTestTable(t, testTableHeader+
		"1\t2\t1\t1-2-3\t5\n"+
		"3\t3\t1\t2 8 3\t8\n")

	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}

	row, ok := table.Lookup("1", "2", "1", "1-2-3")
	if !ok {
		t.Fatal("expected lookup hit for 1-2-1-1-2-3")
	}
	if row.Type != "5" {
		t.Fatalf("Type = %q, want 5", row.Type)
	}

	// Q3_order source values normalize the same as user input.
	if _, ok := table.Lookup("3", "3", "1", "2-8-3"); !ok {
		t.Fatal("expected lookup hit for normalized Q3_order column")
	}

	if _, ok := table.Lookup("1", "1", "1", "1-2-3"); ok {
		t.Fatal("expected lookup miss for unknown combination")
	}
}

func TestClassificationTable_FirstLoadedRowWins(t *testing.T) {
	table := loadTestTable(t, testTableHeader+
		"1\t2\t1\t1-2-3\t5\n"+
		"1\t2\t1\t1-2-3\t7\n")

	for i := 0; i < 3; i++ {
		row, ok := table.Lookup("1", "2", "1", "1-2-3")
		if !ok {
			t.Fatal("expected lookup hit")
		}
		if row.Type != "5" {
			t.Fatalf("duplicate key resolved to %q, want first-loaded 5", row.Type)
		}
	}
}

func TestClassificationTable_DiscardsIncompleteRows(t *testing.T) {
	table := loadTestTable(t, testTableHeader+
		"4\t2\t1\t1-2-3\t5\n"+ // Q1-1 outside 1-3 normalizes empty
		"1\t2\t1\t1 2\t5\n"+ //   fewer than three digits
		"1\t2\t1\t1-2-3\t\n"+ //  missing type
		"2\t2\t2\t4-5-6\t9\n")

	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}
	if _, ok := table.Lookup("2", "2", "2", "4-5-6"); !ok {
		t.Fatal("expected the single valid row to be loaded")
	}
}

func TestClassificationTable_ResultColumnFallback(t *testing.T) {
	table := loadTestTable(t, "Q1-1\tQ1-2\tQ2-1\tQ3_order\tResult\n"+
		"1\t1\t1\t1-2-3\t4\n")

	row, ok := table.Lookup("1", "1", "1", "1-2-3")
	if !ok {
		t.Fatal("expected lookup hit via Result column")
	}
	if row.Type != "4" {
		t.Fatalf("Type = %q, want 4", row.Type)
	}
}

func TestClassificationTable_ReadyGate(t *testing.T) {
	table := NewClassificationTable()
	if table.Ready() {
		t.Fatal("fresh table must not report ready")
	}
	if table.Len() != 0 {
		t.Fatalf("Len before load = %d, want 0", table.Len())
	}
	if _, ok := table.Lookup("1", "2", "1", "1-2-3"); ok {
		t.Fatal("lookup must miss while not ready")
	}

	if err := table.LoadReader(strings.NewReader(testTableHeader + "1\t2\t1\t1-2-3\t5\n")); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if !table.Ready() {
		t.Fatal("table must report ready after load")
	}
}
