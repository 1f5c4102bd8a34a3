package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils"
	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer            = "FOODGRAM"
	authTokenDuration = time.Minute * 120

	audienceAuth          = "auth"
	audiencePasswordReset = "password_reset"
)

type (
	JWTService interface {
		GenerateAuthToken(userID string, role string) (string, error)
		ParseAuthToken(token string) (*domain.Viewer, error)
		GenerateResetToken(userID string, stamp string, ttl time.Duration) (string, error)
		ParseResetToken(token string) (ResetClaims, error)
	}

	authClaims struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	// ResetClaims identify the account a reset link was issued for. Stamp
	// is compared with the current password hash when the link is used.
	ResetClaims struct {
		UserID string `json:"user_id"`
		Stamp  string `json:"stamp"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    issuer,
	}
}

func (j *jwtService) registered(audience string, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    j.issuer,
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (j *jwtService) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (j *jwtService) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

// parse validates signature, expiry and audience, and fills claims.
func (j *jwtService) parse(token string, claims jwt.Claims, audience string) error {
	parsed, err := jwt.ParseWithClaims(token, claims, j.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return domain.ErrTokenInvalid
	}

	var registered *jwt.RegisteredClaims
	switch c := claims.(type) {
	case *authClaims:
		registered = &c.RegisteredClaims
	case *ResetClaims:
		registered = &c.RegisteredClaims
	}
	if registered == nil || !registered.VerifyAudience(audience, true) || !registered.VerifyIssuer(j.issuer, true) {
		return domain.ErrTokenInvalid
	}
	return nil
}

func (j *jwtService) GenerateAuthToken(userID string, role string) (string, error) {
	return j.sign(authClaims{
		UserID:           userID,
		Role:             role,
		RegisteredClaims: j.registered(audienceAuth, authTokenDuration),
	})
}

func (j *jwtService) ParseAuthToken(token string) (*domain.Viewer, error) {
	claims := &authClaims{}
	if err := j.parse(token, claims, audienceAuth); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.Viewer{UserID: claims.UserID, Role: claims.Role}, nil
}

func (j *jwtService) GenerateResetToken(userID string, stamp string, ttl time.Duration) (string, error) {
	return j.sign(ResetClaims{
		UserID:           userID,
		Stamp:            stamp,
		RegisteredClaims: j.registered(audiencePasswordReset, ttl),
	})
}

// ParseResetToken rejects login tokens even though both are signed with the
// same key.
func (j *jwtService) ParseResetToken(token string) (ResetClaims, error) {
	claims := &ResetClaims{}
	if err := j.parse(token, claims, audiencePasswordReset); err != nil {
		return ResetClaims{}, err
	}
	if claims.UserID == "" {
		return ResetClaims{}, domain.ErrTokenInvalid
	}
	return *claims, nil
}
