package forth

import (
	"strconv"
	"strings"

	"github.com/BogCyg/BCForth/cell"
)

// parseInteger matches the integer regex under the current base (spec
// §4.5/§4.7): an explicit `0x`/`-0x` prefix always means hex regardless of
// base; otherwise the token is parsed in base 10 or base 16 depending on
// what BASE currently holds. No base is ever inferred from a suffix (spec
// §9 Open Question, preserved verbatim).
func parseInteger(tok string, base int) (cell.Cell, bool) {
	switch {
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		v, err := strconv.ParseInt(tok[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		return cell.FromInt(v), true
	case strings.HasPrefix(tok, "-0x") || strings.HasPrefix(tok, "-0X"):
		v, err := strconv.ParseInt(tok[3:], 16, 64)
		if err != nil {
			return 0, false
		}
		return cell.FromInt(-v), true
	}
	b := 10
	if base == 16 {
		b = 16
	}
	v, err := strconv.ParseInt(tok, b, 64)
	if err != nil {
		return 0, false
	}
	return cell.FromInt(v), true
}

// parseFloat matches the float regex (spec §4.5): it must contain a `.`,
// otherwise it is never considered a float literal even if it would
// otherwise parse as one (e.g. an integer never falls through to float).
func parseFloat(tok string) (cell.Cell, bool) {
	if !strings.Contains(tok, ".") {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return cell.FromFloat(f), true
}

// formatInt renders v in the given base for `.` and friends: hex values
// get a `0x` prefix, decimal values print bare.
func formatInt(v cell.Cell, base int) string {
	if base == 16 {
		n := v.Int()
		if n < 0 {
			return "-0x" + strconv.FormatInt(-n, 16)
		}
		return "0x" + strings.ToUpper(strconv.FormatInt(n, 16))
	}
	return strconv.FormatInt(v.Int(), 10)
}
