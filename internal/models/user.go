package models

// User roles offered by the profile form.
const (
	RoleBuyer        = "Buyer"
	RoleRenter       = "Renter"
	RoleSeller       = "Seller"
	RoleJustBrowsing = "Just Browsing"
)

// User is a registered account. Email is the unique key within the user
// list; PasswordHash holds the one-way digest and is never sent to clients.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	TargetCity   string `json:"target_city"`
	MinPrice     string `json:"min_price"`
	MaxPrice     string `json:"max_price"`
}

// Public returns a copy safe to hand back to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
