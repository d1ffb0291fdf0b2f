package family

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const (
	codeSpace    = 1000000
	codeAttempts = 10
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository, cache Cache, cacheTTL time.Duration) *Service {
	if cache == nil {
		cache = NewNoopCache()
	}
	return &Service{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

type CreateInput struct {
	Nom string
}

type UpdateInput struct {
	ID   string
	Nom  string
	Code string
}

func (s *Service) Get(ctx context.Context, id string) (*Family, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Family, error) {
	if fam, ok := s.cache.GetByCode(code); ok {
		return fam, nil
	}

	fam, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	s.cache.SetByCode(code, fam, s.cacheTTL)
	return fam, nil
}

func (s *Service) List(ctx context.Context) ([]Family, error) {
	return s.repo.ListAll(ctx)
}

// Create generates the join code and inserts the family inside one
// transaction. The generator alone does not guarantee uniqueness, so
// each draw is checked against the store and redrawn on conflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Family, error) {
	var result Family
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		code, err := generateUniqueCode(ctx, tx)
		if err != nil {
			return err
		}

		id := uuid.New().String()
		fam := Family{
			ID:        id,
			Nom:       in.Nom,
			Code:      code,
			CreatedBy: id,
			UpdatedBy: id,
		}
		if err := tx.Create(ctx, &fam); err != nil {
			return err
		}

		result = fam
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*Family, error) {
	var result *Family
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		fam := &Family{
			ID:        in.ID,
			Nom:       in.Nom,
			Code:      in.Code,
			UpdatedBy: in.ID,
		}
		if err := tx.Update(ctx, fam); err != nil {
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

	s.cache.DeleteByCode(result.Code)
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

func generateUniqueCode(ctx context.Context, repo Repository) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := generateCode()
		if err != nil {
			return "", err
		}
		taken, err := repo.IsCodeTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeGenerationFailed
}

// generateCode draws a random integer in [0, 1000000) and formats it
// as a zero-padded 6-digit decimal string.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
