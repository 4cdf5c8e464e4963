package service

import (
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/utils"
)

type JWTTokenIssuer struct {
	Manager *utils.JWTManager
}

func (j JWTTokenIssuer) IssueAccessToken(userID string, email string, role string) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, ErrInvalidToken
	}
	return j.Manager.IssueAccessToken(userID, email, role)
}

func (j JWTTokenIssuer) IssueRefreshToken(userID string, generation int64) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, ErrInvalidToken
	}
	return j.Manager.IssueRefreshToken(userID, generation)
}

func (j JWTTokenIssuer) ParseRefreshToken(token string) (string, int64, error) {
	if j.Manager == nil {
		return "", 0, ErrInvalidToken
	}
	claims, err := j.Manager.ParseRefreshToken(token)
	if err != nil {
		return "", 0, err
	}
	return claims.UserID, claims.Generation, nil
}
