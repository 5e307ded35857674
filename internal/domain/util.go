package domain

import (
	"math/big"
	"strings"
)

// formatTokenAmount renders an amount of token base units as a decimal
// string, e.g. 5000000 with 6 decimals becomes "5".
func formatTokenAmount(amount int64, decimals int) string {
	denominator := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	value := new(big.Rat).SetFrac(big.NewInt(amount), denominator)

	s := value.FloatString(decimals)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}

	return s
}
