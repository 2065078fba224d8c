package auth

// User is a merchant account. Merchants manage their own restaurants'
// BOM mappings and inventory; admins can touch any restaurant.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const (
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)
