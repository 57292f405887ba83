package view

import (
	"strings"
	"testing"
	"time"
)

func TestRenderVoucher(t *testing.T) {
	generated := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	doc, err := RenderVoucher(VoucherData{
		Reference:    "ref-123",
		Company:      "Acme Travel",
		ClientName:   "Mona Khaled",
		Hotel:        "Sea View",
		RoomType:     "Single",
		Rooms:        2,
		Nights:       3,
		TotalSelling: 480,
		Paid:         100,
		Remaining:    380,
		GeneratedAt:  generated,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"ref-123",
		"Acme Travel",
		"Mona Khaled",
		"Sea View - Single",
		"2 x 3",
		"480.00",
		"100.00",
		"380.00",
		"2026-08-31T12:00:00Z",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestRenderVoucherEscapesMarkup(t *testing.T) {
	doc, err := RenderVoucher(VoucherData{ClientName: "<script>alert(1)</script>", GeneratedAt: time.Now()})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(doc, "<script>") {
		t.Fatal("client name was not escaped")
	}
}
