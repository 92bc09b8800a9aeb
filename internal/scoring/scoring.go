package scoring

import "log/slog"

// Item is one purchased line as seen by the rules
type Item struct {
	ShortDescription string
	Price            string
}

// Receipt contains the fields the rules score. Values are raw text;
// each rule parses what it needs.
type Receipt struct {
	Retailer     string
	PurchaseDate string
	PurchaseTime string
	Total        string
	Items        []Item
}

// Breakdown holds the contribution of every rule
type Breakdown struct {
	Retailer         int `json:"retailer"`
	RoundDollar      int `json:"roundDollar"`
	QuarterMultiple  int `json:"quarterMultiple"`
	ItemPairs        int `json:"itemPairs"`
	ItemDescriptions int `json:"itemDescriptions"`
	PurchaseDate     int `json:"purchaseDate"`
	PurchaseTime     int `json:"purchaseTime"`
}

// Points returns the sum of all contributions
func (b Breakdown) Points() int {
	return b.Retailer +
		b.RoundDollar +
		b.QuarterMultiple +
		b.ItemPairs +
		b.ItemDescriptions +
		b.PurchaseDate +
		b.PurchaseTime
}

// Engine scores receipts. It holds no state and is safe for concurrent use.
type Engine struct{}

// NewEngine creates a new Engine
func NewEngine() *Engine {
	return &Engine{}
}

// Score runs every rule against the receipt. A malformed field only
// zeroes the rule that reads it.
func (e *Engine) Score(r Receipt) Breakdown {
	b := Breakdown{
		Retailer:         retailerPoints(r.Retailer),
		ItemPairs:        itemPairPoints(r.Items),
		ItemDescriptions: itemDescriptionPoints(r.Items),
		PurchaseDate:     purchaseDatePoints(r.PurchaseDate),
		PurchaseTime:     purchaseTimePoints(r.PurchaseTime),
	}
	b.RoundDollar, b.QuarterMultiple = totalPoints(r.Total)

	slog.Debug("Retailer points", "retailer", r.Retailer, "points", b.Retailer)
	slog.Debug("Total points", "total", r.Total, "round_dollar", b.RoundDollar, "quarter_multiple", b.QuarterMultiple)
	slog.Debug("Item points", "items", len(r.Items), "pairs", b.ItemPairs, "descriptions", b.ItemDescriptions)
	slog.Debug("Date points", "purchase_date", r.PurchaseDate, "points", b.PurchaseDate)
	slog.Debug("Time points", "purchase_time", r.PurchaseTime, "points", b.PurchaseTime)

	return b
}
