package printing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	onesWords = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
		"Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tensWords = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
)

// NumberToWords spells n using the Indian system (thousand, lakh, crore).
// Zero yields "".
func NumberToWords(n int64) string {
	switch {
	case n <= 0:
		return ""
	case n < 20:
		return onesWords[n]
	case n < 100:
		return strings.TrimSpace(tensWords[n/10] + " " + onesWords[n%10])
	case n < 1000:
		return joinWords(onesWords[n/100]+" Hundred", NumberToWords(n%100))
	case n < 100000:
		return joinWords(NumberToWords(n/1000)+" Thousand", NumberToWords(n%1000))
	case n < 10000000:
		return joinWords(NumberToWords(n/100000)+" Lakh", NumberToWords(n%100000))
	default:
		return joinWords(NumberToWords(n/10000000)+" Crore", NumberToWords(n%10000000))
	}
}

func joinWords(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}

// AmountInWords renders a rupee amount as "Rupees ... and ... Paise Only"
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	var parts []string
	if rupees > 0 {
		parts = append(parts, "Rupees "+NumberToWords(rupees))
	}
	if paise > 0 {
		parts = append(parts, NumberToWords(paise)+" Paise")
	}
	if len(parts) == 0 {
		return "Rupees Zero Only"
	}
	return strings.Join(parts, " and ") + " Only"
}
