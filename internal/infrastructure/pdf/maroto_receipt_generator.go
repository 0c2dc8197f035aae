// Package pdf implementa la generación del recibo de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Recibo + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Cajero / Método de pago / Teléfono (mobile-money)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/pos-api/internal/application/sales"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	sale *entity.Sale,
	store sales.StoreInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(saleInfoRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(sale.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y N° recibo + fecha (der).
func headerRow(sale *entity.Sale, store sales.StoreInfo) core.Row {
	fecha := sale.CreatedAt.Format("02/01/2006 15:04")
	sub := store.Phone
	if sub == "" {
		sub = "Recibo de venta"
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(store.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(sub, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Recibo "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// saleInfoRow: cajero y método de pago (con teléfono si aplica).
func saleInfoRow(sale *entity.Sale) core.Row {
	cashier := sale.CashierName
	if cashier == "" {
		cashier = sale.CashierID
	}
	payment := paymentLabel(sale.PaymentMethod)
	if sale.PaymentMethod == entity.PaymentMobileMoney && sale.CustomerPhone != "" {
		payment += " · " + sale.CustomerPhone
	}

	return row.New(10).Add(
		col.New(6).Add(
			text.New("Cajero: "+cashier, props.Text{Size: 9, Top: 2}),
		),
		col.New(6).Add(
			text.New("Pago: "+payment, props.Text{Size: 9, Top: 2, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(2).Add(text.New("Cant.", header)),
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", propsRight(header))),
		col.New(2).Add(text.New("Subtotal", propsRight(header))),
	)
}

func tableItemRows(items []entity.SaleItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	cell := props.Text{Size: 9, Top: 1}
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), cell)),
			col.New(6).Add(text.New(it.ProductName, cell)),
			col.New(2).Add(text.New(it.UnitPrice.StringFixed(2), propsRight(cell))),
			col.New(2).Add(text.New(it.Subtotal().StringFixed(2), propsRight(cell))),
		))
	}
	return rows
}

func totalRow(sale *entity.Sale) core.Row {
	return row.New(12).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL: "+sale.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func propsRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}

// shortID devuelve los primeros 8 caracteres del UUID para el encabezado.
func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

func paymentLabel(method string) string {
	switch method {
	case entity.PaymentCash:
		return "Efectivo"
	case entity.PaymentMobileMoney:
		return "Dinero móvil"
	case entity.PaymentCard:
		return "Tarjeta"
	default:
		return method
	}
}
