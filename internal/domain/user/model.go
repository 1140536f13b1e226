package user

import "strings"

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID      string
	DisplayName string
}

func (p Principal) Valid() bool {
	return strings.TrimSpace(p.UserID) != ""
}
