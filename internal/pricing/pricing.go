package pricing

import (
	"github.com/shopspring/decimal"

	"app/internal/domain/model"
)

// 税率・サービス料率。クライアント側の見積りと必ず同じ値にすること。
const (
	TaxRate     = 0.05
	ServiceRate = 0.10
)

var (
	taxRate     = decimal.NewFromFloat(TaxRate)
	serviceRate = decimal.NewFromFloat(ServiceRate)
)

// Subtotalは注文合計の素朴な合算（丸めない）。
func Subtotal(orderTotals []float64) float64 {
	sum := decimal.Zero
	for _, t := range orderTotals {
		sum = sum.Add(decimal.NewFromFloat(t))
	}
	f, _ := sum.Float64()
	return f
}

// Computeは内訳を計算する。
// 税・サは丸めていないsubtotalからそれぞれ独立に2桁丸め。
// grandTotalは（subtotal + 丸めた税 + 丸めたサ）をさらに2桁丸め。
// subtotalを先に丸めてはいけない。
func Compute(subtotal float64) model.Totals {
	sub := decimal.NewFromFloat(subtotal)
	tax := sub.Mul(taxRate).Round(2)
	service := sub.Mul(serviceRate).Round(2)
	grand := sub.Add(tax).Add(service).Round(2)

	return model.Totals{
		Subtotal:   subtotal,
		Tax:        tax.InexactFloat64(),
		Service:    service.InexactFloat64(),
		GrandTotal: grand.InexactFloat64(),
	}
}
