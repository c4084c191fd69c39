package sheet_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"project-monitor/pkg/sheet"
)

func TestNewTable(t *testing.T) {
	records := [][]string{
		{"Report title", "", ""},
		{"", "", ""},
		{"KONTRAK", " STATUS ", "BOBOT", ""},
		{"P1", "SELESAI"},
		{"", "", ""},
		{"P2", "TUNDA", "2", "extra"},
	}

	tbl := sheet.NewTable("Kontrak", records, sheet.ReadOptions{SkipRows: 1})

	wantHeaders := []string{"KONTRAK", " STATUS ", "BOBOT"}
	if !reflect.DeepEqual(tbl.Headers, wantHeaders) {
		t.Fatalf("headers = %q, want %q", tbl.Headers, wantHeaders)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(tbl.Rows))
	}
	if !reflect.DeepEqual(tbl.Rows[0], []string{"P1", "SELESAI", ""}) {
		t.Errorf("short row not padded: %q", tbl.Rows[0])
	}
	if !reflect.DeepEqual(tbl.Rows[1], []string{"P2", "TUNDA", "2"}) {
		t.Errorf("long row not cut: %q", tbl.Rows[1])
	}
	if tbl.Column("BOBOT") != 2 || tbl.Column("MISSING") != -1 {
		t.Errorf("unexpected Column() results")
	}
}

func TestNewTableSkipBeyondEnd(t *testing.T) {
	tbl := sheet.NewTable("x", [][]string{{"a"}}, sheet.ReadOptions{SkipRows: 5})
	if len(tbl.Headers) != 0 || len(tbl.Rows) != 0 {
		t.Errorf("expected empty table, got %+v", tbl)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	in := "\ufeffKONTRAK,JENIS PEKERJAAN,% COMPLETE\nP1,\"Galian, tanah\",50\nP1,Pondasi,0.5\n"

	wb, err := sheet.ReadCSV(strings.NewReader(in), "upload", sheet.ReadOptions{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	tbl, ok := wb.Sheet("")
	if !ok {
		t.Fatalf("expected default sheet")
	}
	if tbl.Headers[0] != "KONTRAK" {
		t.Errorf("BOM not stripped: %q", tbl.Headers[0])
	}
	if tbl.Rows[0][1] != "Galian, tanah" {
		t.Errorf("quoted cell mangled: %q", tbl.Rows[0][1])
	}

	out, err := sheet.EncodeCSV(tbl)
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}
	again, err := sheet.ReadCSV(bytes.NewReader(out), "upload", sheet.ReadOptions{})
	if err != nil {
		t.Fatalf("ReadCSV again: %v", err)
	}
	if !reflect.DeepEqual(again.Tables["upload"], tbl) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", again.Tables["upload"], tbl)
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	tbl := sheet.Table{
		Name:    "Kontrak",
		Headers: []string{"KONTRAK", "START", "BOBOT"},
		Rows: [][]string{
			{"P1", "2024-01-01", "1.5"},
			{"P2", "2024-02-01", "2"},
		},
	}

	data, err := sheet.EncodeXLSX(tbl)
	if err != nil {
		t.Fatalf("EncodeXLSX: %v", err)
	}

	wb, err := sheet.ReadXLSX(bytes.NewReader(data), sheet.ReadOptions{})
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if !reflect.DeepEqual(wb.Names, []string{"Kontrak"}) {
		t.Fatalf("sheet names = %q", wb.Names)
	}
	got, _ := wb.Sheet("Kontrak")
	if !reflect.DeepEqual(got, tbl) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, tbl)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		head    []byte
		want    sheet.Format
		wantErr bool
	}{
		{name: "xlsx extension", file: "plan.XLSX", want: sheet.FormatXLSX},
		{name: "csv extension", file: "plan.csv", want: sheet.FormatCSV},
		{name: "zip magic", file: "upload", head: []byte("PK\x03\x04rest"), want: sheet.FormatXLSX},
		{name: "plain text", file: "upload", head: []byte("a,b\n"), want: sheet.FormatCSV},
		{name: "binary", file: "upload", head: []byte{0x00, 0x01}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sheet.DetectFormat(tt.file, tt.head)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
