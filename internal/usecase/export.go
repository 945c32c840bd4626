package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

// utf8BOM keeps spreadsheet apps from misreading accented customer names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{"ID", "Fecha", "Cliente", "Email", "Productos", "Total", "Estado", "Pago"}

// ExportOrdersCSV renders the order list as a BOM-prefixed CSV document with
// one row per order. Multi-item orders join their lines with " | " inside a
// single field.
func ExportOrdersCSV(orders []model.Order) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, o := range orders {
		payment := o.PaymentStatus
		if payment == "" {
			payment = model.PaymentStatusUnpaid
		}
		row := []string{
			o.ID,
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.Customer.FirstName + " " + o.Customer.LastName,
			o.Customer.Email,
			joinItems(o.Items),
			strconv.FormatFloat(o.Total, 'f', -1, 64),
			string(o.Status),
			string(payment),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFileName builds the download name for an export taken at the given time.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("allmart-pedidos-%s.csv", now.Format("2006-01-02"))
}

func joinItems(items []model.OrderItem) string {
	var buf bytes.Buffer
	for i, item := range items {
		if i > 0 {
			buf.WriteString(" | ")
		}
		fmt.Fprintf(&buf, "%s x%d", item.ProductName, item.Quantity)
	}
	return buf.String()
}
