// Package money handles rupee amounts for pricing and checkout.
// Amounts are carried as int64 paise everywhere; decimals only show
// up transiently inside tax computation so rounding stays explicit.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// PaisePerRupee converts between display rupees and stored paise.
	PaisePerRupee = 100

	// BasisPointDenominator scales tax rates expressed in basis points.
	BasisPointDenominator = 10000
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Summary is the priced breakdown of a cart or order.
type Summary struct {
	SubtotalPaise   int64 `json:"subtotalPaise"`
	TaxPaise        int64 `json:"taxPaise"`
	GrandTotalPaise int64 `json:"grandTotalPaise"`
}

// ComputeTax applies a basis-point rate to a paise subtotal, rounding
// half away from zero to the nearest paisa.
func ComputeTax(subtotalPaise int64, rateBasisPoints int64) int64 {
	if subtotalPaise <= 0 || rateBasisPoints <= 0 {
		return 0
	}
	tax := decimal.NewFromInt(subtotalPaise).
		Mul(decimal.NewFromInt(rateBasisPoints)).
		Div(decimal.NewFromInt(BasisPointDenominator))
	return tax.Round(0).IntPart()
}

// Summarize prices a subtotal under the given tax rate.
func Summarize(subtotalPaise int64, rateBasisPoints int64) Summary {
	tax := ComputeTax(subtotalPaise, rateBasisPoints)
	return Summary{
		SubtotalPaise:   subtotalPaise,
		TaxPaise:        tax,
		GrandTotalPaise: subtotalPaise + tax,
	}
}

// FormatPrice renders paise as a rupee string with Indian digit
// grouping, e.g. 1250000 -> "₹12,500". Fractional paise keep two
// decimal places so totals never silently truncate.
func FormatPrice(paise int64) string {
	rupees := paise / PaisePerRupee
	remainder := paise % PaisePerRupee
	if remainder < 0 {
		remainder = -remainder
	}
	if remainder == 0 {
		return printer.Sprintf("₹%v", number.Decimal(rupees))
	}
	value := float64(paise) / float64(PaisePerRupee)
	return printer.Sprintf("₹%v", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
