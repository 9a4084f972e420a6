package enums

// UserRole distinguishes the artist (seller) from platform admins.
type UserRole string

const (
	UserRoleArtist UserRole = "artist"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleArtist, UserRoleAdmin:
		return true
	default:
		return false
	}
}
