package roomfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neatops/pulsectl/internal/bulk"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rooms.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestRead_ValidCSV(t *testing.T) {
	path := writeTempCSV(t, "locationId,name\n1,Room A\n2,Room B\n")

	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(f.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(f.Rows))
	}

	records := f.Records()
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	want := bulk.Record{LocationID: "1", Name: "Room A"}
	if records[0] != want {
		t.Errorf("records[0] = %+v, want %+v", records[0], want)
	}
}

func TestRead_MissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no locationId", "name\nRoom A\n", "locationId"},
		{"no name", "locationId\n1\n", "name"},
		{"both missing", "foo,bar\nx,y\n", "locationId, name"},
		{"empty file", "", "empty or malformed"},
		{"header only", "locationId,name\n", "no data rows"},
	}

	for _, tt := range tests {
		path := writeTempCSV(t, tt.content)
		_, err := Read(path)
		if err == nil {
			t.Errorf("%s: Read accepted %q", tt.name, tt.content)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: err = %v, want mention of %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Read accepted a missing file")
	}
}

func TestRecords_ExistingDEC(t *testing.T) {
	path := writeTempCSV(t, "locationId,name,DEC\n1,Room A,OLD1\n2,Room B,\n")

	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	records := f.Records()
	if records[0].DEC != "OLD1" {
		t.Errorf("records[0].DEC = %q, want %q", records[0].DEC, "OLD1")
	}
	if records[1].DEC != "" {
		t.Errorf("records[1].DEC = %q, want empty", records[1].DEC)
	}
}

func TestAnnotate_AppendsDECColumn(t *testing.T) {
	path := writeTempCSV(t, "locationId,name\n1,Room A\n2,Room B\n")
	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	outcomes := []bulk.Outcome{
		{Status: bulk.StatusSucceeded, DEC: "A1"},
		{Status: bulk.StatusFailed},
	}
	if err := f.Annotate(outcomes); err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := string(data)
	want := "locationId,name,DEC\n1,Room A,A1\n2,Room B,\n"
	if got != want {
		t.Errorf("annotated file:\n%q\nwant:\n%q", got, want)
	}
}

func TestAnnotate_PreservesUnknownColumnsAndOrder(t *testing.T) {
	path := writeTempCSV(t, "locationId,building,name,floor\n2,North,Room B,3\n1,South,Room A,1\n")
	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	outcomes := []bulk.Outcome{
		{Status: bulk.StatusSucceeded, DEC: "B2"},
		{Status: bulk.StatusSucceeded, DEC: "A1"},
	}
	if err := f.Annotate(outcomes); err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	data, _ := os.ReadFile(path)
	want := "locationId,building,name,floor,DEC\n2,North,Room B,3,B2\n1,South,Room A,1,A1\n"
	if string(data) != want {
		t.Errorf("annotated file:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestAnnotate_Idempotent(t *testing.T) {
	path := writeTempCSV(t, "locationId,name\n1,Room A\n2,Room B\n")
	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	outcomes := []bulk.Outcome{
		{Status: bulk.StatusSucceeded, DEC: "A1"},
		{Status: bulk.StatusFailed},
	}
	if err := f.Annotate(outcomes); err != nil {
		t.Fatalf("first Annotate: %v", err)
	}
	first, _ := os.ReadFile(path)

	// Re-read and annotate again with the same outcomes.
	f2, err := Read(path)
	if err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if err := f2.Annotate(outcomes); err != nil {
		t.Fatalf("second Annotate: %v", err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Errorf("annotation not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestAnnotate_CountMismatch(t *testing.T) {
	path := writeTempCSV(t, "locationId,name\n1,Room A\n")
	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if err := f.Annotate(nil); err == nil {
		t.Error("Annotate accepted a mismatched outcome count")
	}
}

func TestListImportFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.xlsx", "notes.txt", "c.CSV"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ListImportFiles(dir)
	if err != nil {
		t.Fatalf("ListImportFiles: %v", err)
	}
	want := []string{"a.xlsx", "b.csv", "c.CSV"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}
