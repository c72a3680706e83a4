// Package setup encodes the inputs of a train generation (player count and
// seed) into a signed code that another table can use to rebuild the same
// train. The train itself is never encoded.
package setup

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/OliverKris/colt-express/game"
)

// ErrInvalidCode indicates a code that fails signature, expiry, or content checks.
var ErrInvalidCode = errors.New("invalid setup code")

// Params are the generation inputs carried by a code.
type Params struct {
	Players int
	Seed    int64
}

type Claims struct {
	Players int `json:"players"`
	// Seed is a decimal string so it survives JSON number precision.
	Seed string `json:"seed"`
	jwt.RegisteredClaims
}

// Encode signs p into a code valid for ttl.
func Encode(secret []byte, p Params, ttl time.Duration, issuer string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("setup secret is required")
	}
	if p.Players < game.MinPlayers || p.Players > game.MaxPlayers {
		return "", fmt.Errorf("encode setup code: %w", game.ErrPlayerCount)
	}

	now := time.Now()
	claims := Claims{
		Players: p.Players,
		Seed:    strconv.FormatInt(p.Seed, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Decode verifies code and returns the parameters it carries.
func Decode(secret []byte, code string) (Params, error) {
	token, err := jwt.ParseWithClaims(code, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Params{}, ErrInvalidCode
	}

	seed, err := strconv.ParseInt(claims.Seed, 10, 64)
	if err != nil {
		return Params{}, fmt.Errorf("%w: seed %q", ErrInvalidCode, claims.Seed)
	}
	if claims.Players < game.MinPlayers || claims.Players > game.MaxPlayers {
		return Params{}, fmt.Errorf("%w: players %d", ErrInvalidCode, claims.Players)
	}
	return Params{Players: claims.Players, Seed: seed}, nil
}
