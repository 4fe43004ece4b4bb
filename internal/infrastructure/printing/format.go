package printing

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Reference prefixes per report kind
const (
	RefPrefixMLWF                 = "MLWF"
	RefPrefixBonus                = "BON"
	RefPrefixAttendance           = "ATT"
	RefPrefixIndividualAttendance = "IND-ATT"
	RefPrefixDefault              = "CYB"
)

// ReferenceNumber formats PREFIX/YYMM/NNNN
func ReferenceNumber(prefix string, at time.Time, serial int) string {
	if prefix == "" {
		prefix = RefPrefixDefault
	}
	return fmt.Sprintf("%s/%s/%04d", prefix, at.Format("0601"), serial%10000)
}

// NewReferenceNumber picks a random four-digit serial
func NewReferenceNumber(prefix string, at time.Time) string {
	return ReferenceNumber(prefix, at, rand.IntN(10000))
}

// FormatLongDate renders "02 January 2006"
func FormatLongDate(t time.Time) string {
	return t.Format("02 January 2006")
}

// FormatINR groups the integer part the Indian way (12,34,567) and keeps
// the given number of decimals.
func FormatINR(d decimal.Decimal, places int32) string {
	s := d.Abs().StringFixed(places)
	intPart, frac, _ := strings.Cut(s, ".")

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		head, last3 := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		grouped = strings.Join(append(groups, last3), ",")
	}
	if frac != "" {
		grouped += "." + frac
	}
	if d.IsNegative() {
		grouped = "-" + grouped
	}
	return grouped
}
