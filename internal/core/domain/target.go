package domain

// AdTarget pairs a campaign with a product it promotes. Weight biases
// the random pick when the campaign wins a placement slot. Targets are
// owned by their campaign and replaced wholesale on edit.
type AdTarget struct {
	ID         int64
	CampaignID int64
	ProductID  int64
	Weight     int32 // positive
}
