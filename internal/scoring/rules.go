package scoring

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	roundDollarBonus     = 50
	quarterMultipleBonus = 25
	pointsPerItemPair    = 5
	oddDayBonus          = 6
	afternoonBonus       = 10

	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// maxExponent bounds the scale of a parsed amount so rescaling stays cheap
	maxExponent = 64
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

	quarter         = decimal.RequireFromString("0.25")
	descriptionRate = decimal.RequireFromString("0.2")

	// maxAmount keeps every item and total contribution well inside int
	maxAmount = decimal.New(1, 15)

	afternoonStarts = 14 * time.Hour
	afternoonEnds   = 16 * time.Hour
)

// parseAmount parses a currency string as an exact decimal. Amounts with
// an extreme exponent or magnitude are rejected like malformed text.
func parseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Decimal{}, false
	}
	if d.Abs().GreaterThan(maxAmount) {
		return decimal.Decimal{}, false
	}
	return d, true
}

// retailerPoints awards one point per ASCII letter or digit
func retailerPoints(retailer string) int {
	return len(nonAlphanumeric.ReplaceAllString(retailer, ""))
}

// totalPoints returns the round dollar and quarter multiple bonuses.
// Both apply to a whole dollar amount.
func totalPoints(total string) (roundDollar, quarterMultiple int) {
	amount, ok := parseAmount(total)
	if !ok {
		slog.Warn("Invalid total format, assigning 0 points", "total", total)
		return 0, 0
	}

	if amount.IsInteger() {
		roundDollar = roundDollarBonus
	}
	if amount.Mod(quarter).IsZero() {
		quarterMultiple = quarterMultipleBonus
	}
	return roundDollar, quarterMultiple
}

// itemPairPoints awards points for every two items
func itemPairPoints(items []Item) int {
	return len(items) / 2 * pointsPerItemPair
}

// itemDescriptionPoints sums ceil(price * 0.2) over items whose trimmed
// description length is a multiple of 3
func itemDescriptionPoints(items []Item) int {
	points := 0
	for _, item := range items {
		points += itemDescriptionPoint(item)
	}
	return points
}

func itemDescriptionPoint(item Item) int {
	price, ok := parseAmount(item.Price)
	if !ok {
		slog.Warn("Invalid price format, skipping item", "description", item.ShortDescription, "price", item.Price)
		return 0
	}

	description := strings.TrimSpace(item.ShortDescription)
	if utf8.RuneCountInString(description)%3 != 0 {
		return 0
	}
	return int(price.Mul(descriptionRate).Ceil().IntPart())
}

// purchaseDatePoints awards a bonus for an odd day of the month
func purchaseDatePoints(purchaseDate string) int {
	date, err := time.Parse(dateLayout, purchaseDate)
	if err != nil {
		slog.Warn("Invalid purchase date format, assigning 0 points", "purchase_date", purchaseDate)
		return 0
	}
	if date.Day()%2 == 0 {
		return 0
	}
	return oddDayBonus
}

// purchaseTimePoints awards a bonus for purchases strictly between
// 14:00 and 16:00
func purchaseTimePoints(purchaseTime string) int {
	// time.Parse accepts a single digit hour for "15"
	if len(purchaseTime) != len(timeLayout) {
		slog.Warn("Invalid purchase time format, assigning 0 points", "purchase_time", purchaseTime)
		return 0
	}
	t, err := time.Parse(timeLayout, purchaseTime)
	if err != nil {
		slog.Warn("Invalid purchase time format, assigning 0 points", "purchase_time", purchaseTime)
		return 0
	}

	sinceMidnight := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	if sinceMidnight > afternoonStarts && sinceMidnight < afternoonEnds {
		return afternoonBonus
	}
	return 0
}
