package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"actbot/internal/acts"
)

func TestWorkbookRoundTrip(t *testing.T) {
	items := []acts.Act{
		{SubmitterID: 42, SubmitterName: "Леся Українка", Date: "07.07", Time: "08:00-18:00", Location: "Луцьк", Description: "перевірка лічильників"},
		{SubmitterID: 43, SubmitterName: "Іван", Date: "2025-07-09", Time: "весь день", Location: "Рівне, склад №2", Description: "інвентаризація"},
	}
	data, err := Workbook(items)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want header + 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Ім'я" || rows[0][5] != "Опис" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	want := [][]string{
		{"42", "Леся Українка", "07.07", "08:00-18:00", "Луцьк", "перевірка лічильників"},
		{"43", "Іван", "2025-07-09", "весь день", "Рівне, склад №2", "інвентаризація"},
	}
	for i, w := range want {
		got := rows[i+1]
		if len(got) != len(w) {
			t.Fatalf("row %d: got %v", i+1, got)
		}
		for j := range w {
			if got[j] != w[j] {
				t.Fatalf("row %d col %d: got %q, want %q", i+1, j, got[j], w[j])
			}
		}
	}
}

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2025, 7, 17, 9, 5, 3, 0, time.UTC))
	if got != "weekly_report_20250717_090503.xlsx" {
		t.Fatalf("unexpected name %q", got)
	}
}
