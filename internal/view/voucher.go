// Package view renders printable documents. Templates are compiled once at
// init and produce self-contained HTML with no external assets, suitable for
// archiving next to the record that generated them.
package view

import (
	"bytes"
	"html/template"
	"time"
)

// VoucherData is the snapshot a voucher document is rendered from.
type VoucherData struct {
	Reference    string
	Company      string
	ClientName   string
	Hotel        string
	RoomType     string
	Rooms        int
	Nights       int
	TotalSelling float64
	Paid         float64
	Remaining    float64
	GeneratedAt  time.Time
}

var voucherTpl = template.Must(template.New("voucher").Parse(`<html><body>
<h2>Voucher / Booking Invoice</h2>
<p><strong>Reference:</strong> {{.Reference}}</p>
<p><strong>Company:</strong> {{.Company}}</p>
<p><strong>Client:</strong> {{.ClientName}}</p>
<p><strong>Hotel:</strong> {{.Hotel}} - {{.RoomType}}</p>
<p><strong>Rooms x Nights:</strong> {{.Rooms}} x {{.Nights}}</p>
<p><strong>Total Selling:</strong> {{printf "%.2f" .TotalSelling}}</p>
<p><strong>Paid:</strong> {{printf "%.2f" .Paid}}</p>
<p><strong>Remaining:</strong> {{printf "%.2f" .Remaining}}</p>
<hr/>
<p>Generated: {{.GeneratedAt.UTC.Format "2006-01-02T15:04:05Z07:00"}}</p>
</body></html>
`))

// RenderVoucher produces the archival HTML document for the snapshot.
func RenderVoucher(d VoucherData) (string, error) {
	var buf bytes.Buffer
	if err := voucherTpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
