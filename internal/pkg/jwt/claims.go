package jwt

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
)

// Identity is the employee identity carried by an access token. Services read
// it from the request context instead of taking identifiers as parameters.
type Identity struct {
	UserID       string
	EmployeeCode string
	CenterID     string
	GroupCode    string
	Role         string
}

var ErrNoIdentity = errors.New("token carries no employee identity")

// IdentityFromContext extracts the access-token claims placed on ctx by the
// jwtauth verifier.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, err
	}

	identity := Identity{
		UserID:       stringClaim(claims, "user_id"),
		EmployeeCode: stringClaim(claims, "employee_code"),
		CenterID:     stringClaim(claims, "center_id"),
		GroupCode:    stringClaim(claims, "group_code"),
		Role:         stringClaim(claims, "role"),
	}
	if identity.EmployeeCode == "" {
		return Identity{}, ErrNoIdentity
	}

	return identity, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}
