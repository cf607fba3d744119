// Package export contains CSV export use cases.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/report"
)

// orderColumns is the fixed CSV column order.
var orderColumns = []string{
	"Order Date", "Customer", "Contact No", "Set", "Quantity", "Time",
	"Delivery Type", "Delivery Address", "Pickup Date", "Delivery Date",
	"Payment Status", "Delivery Status", "Remarks",
}

// ExportOrdersInput selects the period the export covers.
type ExportOrdersInput struct {
	Mode  report.PeriodMode
	Year  int
	Month time.Month
}

// ExportOrdersOutput carries the rendered CSV document.
type ExportOrdersOutput struct {
	Filename string
	Data     []byte
}

// ExportOrdersUseCase renders the order book as CSV.
type ExportOrdersUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewExportOrdersUseCase creates a new ExportOrdersUseCase instance.
func NewExportOrdersUseCase(orderRepo adapter.OrderRepository) *ExportOrdersUseCase {
	return &ExportOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute renders the CSV for the requested period, oldest orders first.
func (uc *ExportOrdersUseCase) Execute(ctx context.Context, input ExportOrdersInput) (*ExportOrdersOutput, error) {
	mode := input.Mode
	if mode == "" {
		mode = report.PeriodAll
	}
	if !report.IsValidPeriodMode(mode) {
		return nil, domainerror.ErrInvalidPeriodMode
	}

	orders, err := uc.orderRepo.SelectAll(ctx, "order_date ASC, created_at ASC")
	if err != nil {
		return nil, err
	}
	scoped := report.FilterOrdersByPeriod(orders, mode, input.Year, input.Month)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(orderColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range scoped {
		o := &scoped[i]
		row := []string{
			o.OrderDate.Format("2006-01-02"),
			o.Name,
			o.ContactNo,
			string(o.Set),
			o.Quantity.String(),
			o.Time,
			string(o.DeliveryType),
			o.DeliveryAddress,
			formatOptionalDate(o.PickupDate),
			formatOptionalDate(o.DeliveryDate),
			string(o.PaymentStatus),
			string(o.DeliveryStatus),
			o.Remarks,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	return &ExportOrdersOutput{
		Filename: exportFilename("orders", mode, input.Year, input.Month),
		Data:     buf.Bytes(),
	}, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
