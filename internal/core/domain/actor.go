package domain

// Role is the caller's role as resolved from the auth token.
type Role string

const (
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// Actor identifies the authenticated caller of a campaign mutation.
// The HTTP layer constructs it from verified token claims.
type Actor struct {
	SellerID int64
	Role     Role
}

// CanManage reports whether the actor may mutate the campaign: admins
// manage everything, sellers only their own campaigns.
func (a Actor) CanManage(c *Campaign) bool {
	return a.Role == RoleAdmin || a.SellerID == c.SellerID
}
