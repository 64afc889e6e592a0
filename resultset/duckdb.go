package resultset

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/marcboeker/go-duckdb"
)

// formatDecimal writes a DuckDB decimal with exactly Scale fractional digits.
func formatDecimal(d duckdb.Decimal) string {
	if d.Value == nil {
		d.Value = new(big.Int)
	}
	digits := new(big.Int).Abs(d.Value).String()
	scale := int(d.Scale)
	if scale > 0 {
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}
	if d.Value.Sign() < 0 {
		return "-" + digits
	}
	return digits
}

// formatInterval writes an interval the way DuckDB prints one, e.g.
// "1 year 2 months 3 days 04:05:06.5". The zero interval is "00:00:00".
func formatInterval(iv duckdb.Interval) string {
	var parts []string
	unit := func(n int64, name string) {
		if n == 0 {
			return
		}
		if n == 1 || n == -1 {
			parts = append(parts, fmt.Sprintf("%d %s", n, name))
			return
		}
		parts = append(parts, fmt.Sprintf("%d %ss", n, name))
	}
	unit(int64(iv.Months/12), "year")
	unit(int64(iv.Months%12), "month")
	unit(int64(iv.Days), "day")
	if iv.Micros != 0 || len(parts) == 0 {
		parts = append(parts, formatClock(iv.Micros))
	}
	return strings.Join(parts, " ")
}

func formatClock(micros int64) string {
	sign := ""
	if micros < 0 {
		sign = "-"
		micros = -micros
	}
	secs, frac := micros/1e6, micros%1e6
	s := fmt.Sprintf("%s%02d:%02d:%02d", sign, secs/3600, secs/60%60, secs%60)
	if frac != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%06d", frac), "0")
	}
	return s
}

func formatUUID(b []byte) (string, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", fmt.Errorf("error decoding uuid: %w", err)
	}
	return id.String(), nil
}
