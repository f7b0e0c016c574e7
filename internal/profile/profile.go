package profile

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const CookieName = "profile"

var (
	ErrBadToken     = errors.New("bad profile token")
	ErrTokenExpired = errors.New("profile token expired")
)

// Signer issues and checks the cookie that identifies a browser profile.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Signer) Issue(id uuid.UUID) (*fiber.Cookie, error) {
	now := s.now()
	expirationTime := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  now.Unix(),
		Subject:   id.String(),
	})
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		Expires:  expirationTime,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}, nil
}

func (s *Signer) Parse(cookie string) (uuid.UUID, error) {
	if cookie == "" {
		return uuid.Nil, ErrBadToken
	}
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return s.secret, nil
	})
	if err != nil {
		ve := &jwt.ValidationError{}
		if errors.As(err, &ve) && ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrBadToken
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrBadToken
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrBadToken
	}
	return id, nil
}
