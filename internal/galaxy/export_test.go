package galaxy

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func exportCloud() *PointCloud {
	return &PointCloud{
		Positions: []float32{2.5, 0, 0, -1, 0.25, 3},
		Colors:    []float32{0.5, 0.5, 0.5, 1, 0, 0.2},
	}
}

func TestWritePLY(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePLY(&buf, exportCloud()); err != nil {
		t.Fatalf("WritePLY() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "ply" {
		t.Errorf("first line = %q, want ply", lines[0])
	}

	header := strings.Join(lines, "\n")
	if !strings.Contains(header, "element vertex 2") {
		t.Error("missing vertex count in header")
	}

	end := -1
	for i, l := range lines {
		if l == "end_header" {
			end = i
		}
	}
	if end < 0 {
		t.Fatal("missing end_header")
	}

	body := lines[end+1:]
	if len(body) != 2 {
		t.Fatalf("got %d vertex lines, want 2", len(body))
	}
	if body[0] != "2.5 0 0 128 128 128" {
		t.Errorf("vertex 0 = %q", body[0])
	}
	if body[1] != "-1 0.25 3 255 0 51" {
		t.Errorf("vertex 1 = %q", body[1])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, exportCloud()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if strings.Join(records[0], ",") != "x,y,z,r,g,b" {
		t.Errorf("header = %v", records[0])
	}
	if strings.Join(records[2], ",") != "-1,0.25,3,1,0,0.2" {
		t.Errorf("row 2 = %v", records[2])
	}
}

func TestWriteEmptyCloud(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePLY(&buf, &PointCloud{}); err != nil {
		t.Fatalf("WritePLY() error = %v", err)
	}
	if !strings.Contains(buf.String(), "element vertex 0") {
		t.Error("expected zero vertex count")
	}
}
