package auth

import "github.com/dentflow/dentflow/internal/platform/apperr"

// Require rejects operations issued without a resolved caller identity.
// Services call this before touching storage.
func Require(u *User) error {
	if u == nil || u.ID == "" {
		return apperr.ErrUnauthenticated
	}
	return nil
}
