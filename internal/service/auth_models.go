package service

import "github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
}

type TokenPair struct {
	AccessToken      string
	ExpiresIn        int64
	RefreshToken     string
	RefreshExpiresIn int64
}

type LoginResult struct {
	TokenPair
	User *entity.User
}
