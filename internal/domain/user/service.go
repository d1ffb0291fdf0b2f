package user

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	FamilyID  *string
	Role      *string
}

type UpdateInput struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	FamilyID  *string
	Role      *string
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByFamily(ctx context.Context, familyID string) ([]User, error) {
	return s.repo.ListByFamily(ctx, familyID)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	usr := &User{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hashed),
		FamilyID:  in.FamilyID,
		Role:      in.Role,
		CreatedBy: id,
		UpdatedBy: id,
	}
	if err := s.repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*User, error) {
	var result *User
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		usr := &User{
			ID:        in.ID,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			FamilyID:  in.FamilyID,
			Role:      in.Role,
			UpdatedBy: in.ID,
		}
		if err := tx.Update(ctx, usr); err != nil {
			return err
		}
		found, err := tx.Find(ctx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Authenticate checks the credential against the stored bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	usr, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return usr, nil
}

// SetToken stores the current session token on the user row. Logout
// clears it, which revokes the token even before its expiry.
func (s *Service) SetToken(ctx context.Context, id, token string) error {
	return s.repo.UpdateToken(ctx, id, token)
}

func (s *Service) ClearToken(ctx context.Context, id string) error {
	return s.repo.UpdateToken(ctx, id, "")
}

// VerifyToken resolves the user for a presented token. The token must
// equal the stored one; a cleared token row rejects the bearer.
func (s *Service) VerifyToken(ctx context.Context, id, token string) (*User, error) {
	usr, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if token == "" || usr.Token != token {
		return nil, ErrInvalidCredentials
	}
	return usr, nil
}
