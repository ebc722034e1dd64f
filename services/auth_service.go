package services

import (
	"errors"
	"fmt"
	"time"

	"bufood/entity"
	"bufood/repository"
	"bufood/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	Repo   *repository.UserRepository
	Secret string
	TTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, Secret: secret, TTL: ttl}
}

type RegisterReq struct {
	Name          string           `json:"name" binding:"required"`
	Email         string           `json:"email" binding:"required,email"`
	Password      string           `json:"password" binding:"required,min=8"`
	ContactNumber string           `json:"contactNumber"`
	Role          entity.ActorRole `json:"role" binding:"required,oneof=Customer Seller"`
}

func (s *AuthService) Register(req *RegisterReq) (*entity.User, error) {
	taken, err := s.Repo.EmailTaken(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", ErrInvalidPayload)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hash),
		ContactNumber: req.ContactNumber,
		Role:          req.Role,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and mints a signed session token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role), s.Secret, s.TTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
