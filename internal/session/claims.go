package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// inspectToken reads the subject and expiry of a JWT access token without
// verifying it. Opaque tokens yield zero values.
func inspectToken(token string) (string, *time.Time) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", nil
	}

	var expiresAt *time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		at := exp.UTC()
		expiresAt = &at
	}

	subject, _ := claims.GetSubject()
	if subject == "" {
		if userID, ok := claims["user_id"]; ok {
			subject = fmt.Sprint(userID)
		}
	}

	return subject, expiresAt
}
