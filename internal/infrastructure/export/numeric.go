package export

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// numeric converts decimal amounts to float64 so spreadsheets treat them as numbers
func numeric(s fmt.Stringer) (float64, bool) {
	d, ok := s.(decimal.Decimal)
	if !ok {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}
