package receipt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zombor/receipt-processor/internal/scoring"
)

var (
	// ErrNotFound is returned when no receipt is stored under an ID
	ErrNotFound = errors.New("receipt not found")

	// ErrInvalidReceipt is matched by every ValidationError
	ErrInvalidReceipt = errors.New("invalid receipt")

	// ErrDuplicateID is returned when an ID is already taken
	ErrDuplicateID = errors.New("receipt id already exists")
)

// Item is one purchased line
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// Receipt is a submitted purchase. A nil field was absent from the
// submission; currency, date and time stay as text so malformed values
// can be stored and scored as zero.
type Receipt struct {
	Retailer     *string `json:"retailer"`
	PurchaseDate *string `json:"purchaseDate"`
	PurchaseTime *string `json:"purchaseTime"`
	Total        *string `json:"total"`
	Items        []Item  `json:"items"`
}

// ValidationError lists the required fields missing from a receipt
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid receipt: missing %s", strings.Join(e.Missing, ", "))
}

// Is makes errors.Is(err, ErrInvalidReceipt) hold
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidReceipt
}

// Validate checks that every required field is present. Values are not
// checked for format.
func (r *Receipt) Validate() error {
	if r == nil {
		return &ValidationError{Missing: []string{"receipt"}}
	}

	var missing []string
	if r.Retailer == nil {
		missing = append(missing, "retailer")
	}
	if r.PurchaseDate == nil {
		missing = append(missing, "purchaseDate")
	}
	if r.PurchaseTime == nil {
		missing = append(missing, "purchaseTime")
	}
	if r.Total == nil {
		missing = append(missing, "total")
	}
	if r.Items == nil {
		missing = append(missing, "items")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Clone returns a deep copy so stored receipts never share memory with callers
func (r *Receipt) Clone() *Receipt {
	if r == nil {
		return nil
	}
	c := &Receipt{
		Retailer:     cloneString(r.Retailer),
		PurchaseDate: cloneString(r.PurchaseDate),
		PurchaseTime: cloneString(r.PurchaseTime),
		Total:        cloneString(r.Total),
	}
	if r.Items != nil {
		c.Items = make([]Item, len(r.Items))
		copy(c.Items, r.Items)
	}
	return c
}

// scoringReceipt converts a validated receipt into the engine's input
func (r *Receipt) scoringReceipt() scoring.Receipt {
	items := make([]scoring.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, scoring.Item{
			ShortDescription: item.ShortDescription,
			Price:            item.Price,
		})
	}
	return scoring.Receipt{
		Retailer:     deref(r.Retailer),
		PurchaseDate: deref(r.PurchaseDate),
		PurchaseTime: deref(r.PurchaseTime),
		Total:        deref(r.Total),
		Items:        items,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
