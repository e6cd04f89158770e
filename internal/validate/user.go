package validate

import (
	"strings"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

// UserPatch validates an admin user update. Role changes are restricted to
// the two known roles; email is lowercased and name trimmed before storage.
func UserPatch(body map[string]any) (*repository.UserUpdate, *Error) {
	var upd repository.UserUpdate

	if v, ok := body["role"]; ok {
		role, ok := nonEmptyString(v)
		if !ok || (role != domain.RoleUser && role != domain.RoleAdmin) {
			return nil, fail("INVALID_ROLE", `Invalid role. Must be either "user" or "admin"`)
		}
		upd.Role = &role
	}
	if v, ok := body["name"]; ok {
		name, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_NAME", "Name must be a non-empty string")
		}
		upd.Name = &name
	}
	if v, ok := body["email"]; ok {
		email, ok := nonEmptyString(v)
		if !ok || !validEmail(email) {
			return nil, fail("INVALID_EMAIL", "Invalid email format")
		}
		lowered := strings.ToLower(email)
		upd.Email = &lowered
	}
	if v, ok := body["emailVerified"]; ok {
		verified, ok := v.(bool)
		if !ok {
			return nil, fail("INVALID_EMAIL_VERIFIED", "emailVerified must be a boolean")
		}
		upd.EmailVerified = &verified
	}
	if v, ok := body["image"]; ok {
		if image, ok := nonEmptyString(v); ok {
			upd.Image = &image
		}
	}

	return &upd, nil
}
