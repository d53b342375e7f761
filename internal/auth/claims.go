package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the claim set embedded in issued access tokens. The
// subject carries the user id; role and company affiliation are embedded at
// issue time so identity resolution never touches the store or trusts
// request payload fields.
type AccessClaims struct {
	jwt.RegisteredClaims
	Role      string `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
}
