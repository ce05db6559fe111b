package statement

import "fmt"

// Kind identifies which financial statement a document contains.
type Kind string

const (
	KindBalanceSheet Kind = "balance_sheet"
	KindProfitLoss   Kind = "profit_loss"
	KindCashFlow     Kind = "cash_flow"
)

// Kinds returns every supported document kind, in display order.
func Kinds() []Kind {
	return []Kind{KindBalanceSheet, KindProfitLoss, KindCashFlow}
}

// ParseKind maps a free-form string (typically from UI wiring or a URL) to a
// Kind. Anything outside the closed set is an explicit error, not a
// fall-through.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBalanceSheet, KindProfitLoss, KindCashFlow:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unrecognized document kind: %q", s)
}

// Title returns the human-readable name of the statement.
func (k Kind) Title() string {
	switch k {
	case KindBalanceSheet:
		return "Balance Sheet"
	case KindProfitLoss:
		return "Profit & Loss Statement"
	case KindCashFlow:
		return "Cash Flow Statement"
	}
	return string(k)
}
