package notice

import "github.com/leapstack-labs/lustre/internal/pages"

// Banner palettes.
const (
	warnColor     = "#92400e"
	warnBG        = "#fef3c7"
	infoColor     = "#1e40af"
	infoBG        = "#dbeafe"
	successColor  = "#166534"
	successBG     = "#dcfce7"
	criticalColor = "#991b1b"
	criticalBG    = "#fee2e2"
)

var defaults = map[pages.PageID][]Notice{
	pages.HomePage: {
		{ID: "home-metal-prices", Message: "Gold spot price moved 2.4% since yesterday. Review price lists before noon.", Color: infoColor, BackgroundColor: infoBG},
	},
	pages.ShippingBoard: {
		{ID: "shipping-pickup", Message: "3 insured parcels are waiting for carrier pickup.", Color: warnColor, BackgroundColor: warnBG},
		{ID: "shipping-customs", Message: "Customs forms are missing for 1 international parcel.", Color: criticalColor, BackgroundColor: criticalBG},
	},
	pages.PreOrderBoardPage: {
		{ID: "preorder-restock", Message: "Lab-grown emerald restock confirmed for next week.", Color: successColor, BackgroundColor: successBG},
	},
	pages.InventoryPage: {
		{ID: "inventory-low-stock", Message: "5 SKUs are below their reorder point.", Color: warnColor, BackgroundColor: warnBG},
	},
	pages.QualityControlPage: {
		{ID: "qc-hallmark", Message: "Hallmarking office closes early on Friday.", Color: infoColor, BackgroundColor: infoBG},
	},
	pages.BillingPage: {
		{ID: "billing-seats", Message: "All seats in your plan are in use.", Color: warnColor, BackgroundColor: warnBG},
	},
}

// Defaults returns the notices a page starts with.
func Defaults(page pages.PageID) []Notice {
	return append([]Notice(nil), defaults[page]...)
}
