package place

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string
	FamilyID string
}

type UpdateInput struct {
	ID       string
	Name     string
	FamilyID string
}

func (s *Service) Get(ctx context.Context, id string) (*Place, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Place, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByFamily(ctx context.Context, familyID string) ([]Place, error) {
	return s.repo.ListByFamily(ctx, familyID)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Place, error) {
	id := uuid.New().String()
	plc := &Place{
		ID:        id,
		Name:      in.Name,
		FamilyID:  in.FamilyID,
		CreatedBy: id,
		UpdatedBy: id,
	}
	if err := s.repo.Create(ctx, plc); err != nil {
		return nil, err
	}
	return plc, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*Place, error) {
	var result *Place
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		plc := &Place{
			ID:        in.ID,
			Name:      in.Name,
			FamilyID:  in.FamilyID,
			UpdatedBy: in.ID,
		}
		if err := tx.Update(ctx, plc); err != nil {
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
