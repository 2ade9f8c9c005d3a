package market

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Labels shown by renderers.
const (
	SoldOutLabel          = "SOLD OUT"
	PurchasedBadge        = "Purchased"
	PurchasedPriceLabel   = "Purchased"
	BuyLabel              = "Buy"
	PurchasedBuyLabel     = "Purchased code"
	LockedHint            = "unlock after purchase"
	PreviewMore           = "..."
	EmptyListMessage      = "No code listed yet"
	EmptySelectionMessage = "Select a listing"
	DefaultCurrency       = "KRW"
	DefaultPreviewLines   = 2
)

// PresentOptions tune how listings are derived for display.
type PresentOptions struct {
	Currency     string
	PreviewLines int
	// LockSoldRows makes sold rows non-selectable from the list.
	LockSoldRows bool
}

// RowView is what the list shows for one listing.
type RowView struct {
	ID          int
	Title       string
	Language    string
	Description string
	PriceLabel  string
	Badge       string
	Preview     []string
	Truncated   bool
	LockedHint  string
	SoldOut     bool
	Selected    bool
	Selectable  bool
}

// DetailView is what the detail pane shows for the selected listing.
type DetailView struct {
	ID          int
	Title       string
	Language    string
	Description string
	CreatedAt   string
	PriceLabel  string
	Badge       string
	Code        string
	CodeMuted   bool
	BuyLabel    string
	BuyEnabled  bool
	SoldOut     bool
}

// Row derives the list row for l.
func Row(l Listing, selected bool, opts PresentOptions) RowView {
	opts = opts.withDefaults()
	preview, truncated := codePreview(l.Code, opts.PreviewLines)
	row := RowView{
		ID:          l.ID,
		Title:       l.Title,
		Language:    l.Language,
		Description: l.Description,
		PriceLabel:  FormatPrice(l.Price, opts.Currency),
		Preview:     preview,
		Truncated:   truncated,
		LockedHint:  LockedHint,
		SoldOut:     l.SoldOut,
		Selected:    selected,
		Selectable:  true,
	}
	if l.SoldOut {
		row.PriceLabel = SoldOutLabel
		row.Badge = PurchasedBadge
		row.LockedHint = ""
		row.Selectable = !opts.LockSoldRows
	}
	return row
}

// Detail derives the detail pane for l.
func Detail(l Listing, opts PresentOptions) DetailView {
	opts = opts.withDefaults()
	view := DetailView{
		ID:          l.ID,
		Title:       l.Title,
		Language:    l.Language,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		PriceLabel:  FormatPrice(l.Price, opts.Currency),
		Code:        l.Code,
		BuyLabel:    BuyLabel,
		BuyEnabled:  true,
		SoldOut:     l.SoldOut,
	}
	if l.SoldOut {
		view.PriceLabel = PurchasedPriceLabel
		view.Badge = SoldOutLabel
		view.CodeMuted = true
		view.BuyLabel = PurchasedBuyLabel
		view.BuyEnabled = false
	}
	return view
}

// FormatPrice renders price with thousands separators and a currency label.
func FormatPrice(price int, currency string) string {
	amount := humanize.Comma(int64(price))
	if currency == "" {
		return amount
	}
	return amount + " " + currency
}

func codePreview(code string, n int) ([]string, bool) {
	lines := strings.Split(code, "\n")
	if len(lines) <= n {
		return lines, false
	}
	return lines[:n], true
}

func (o PresentOptions) withDefaults() PresentOptions {
	if o.PreviewLines <= 0 {
		o.PreviewLines = DefaultPreviewLines
	}
	if strings.TrimSpace(o.Currency) == "" {
		o.Currency = DefaultCurrency
	}
	return o
}
