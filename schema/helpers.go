package schema

import "strconv"

// FormatUSD renders a dollar amount as "$" followed by a thousands-grouped
// integer, e.g. 480769 -> "$480,769".
func FormatUSD(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "-$" + string(grouped)
	}
	return "$" + string(grouped)
}
