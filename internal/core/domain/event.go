package domain

import "time"

// AdClick is an immutable audit record of one accepted charge.
type AdClick struct {
	ID             string // uuid
	CampaignID     int64
	ProductID      int64
	Cost           int64
	IP             string
	UserAgent      string
	IdempotencyKey string // empty when the caller supplied none
	CreatedAt      time.Time
}

// EntryTypeAdSpend is the ledger entry type for click charges.
const EntryTypeAdSpend = "AD_SPEND"

// LedgerEntry is an append-only financial record attributing a debit to
// the campaign's owning seller. It is written in the same transaction
// as its AdClick.
type LedgerEntry struct {
	ID             string // uuid
	SellerID       int64
	EntryType      string
	Amount         int64
	Currency       string
	CampaignID     int64
	ProductID      int64
	IdempotencyKey string
	CreatedAt      time.Time
}
