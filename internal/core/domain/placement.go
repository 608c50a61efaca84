package domain

// SponsoredLabel marks paid placements in search results.
const SponsoredLabel = "Sponsored"

// Placement is one sponsored slot returned to the search path. It is
// advisory only; the budget is re-validated when a click is charged.
type Placement struct {
	CampaignID int64  `json:"campaignId"`
	ProductID  int64  `json:"productId"`
	CPC        int64  `json:"cpc"`
	Label      string `json:"label"`
}
