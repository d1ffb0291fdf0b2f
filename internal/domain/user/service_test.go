package user

import (
	"context"
	"errors"
	"testing"
)

type fakeUserRepo struct {
	users  map[string]*User
	emails map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*User),
		emails: make(map[string]string),
	}
}

func (r *fakeUserRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeUserRepo) Find(ctx context.Context, id string) (*User, error) {
	usr, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *usr
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	id, ok := r.emails[email]
	if !ok {
		return nil, ErrNotFound
	}
	return r.Find(ctx, id)
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]User, error) {
	result := make([]User, 0, len(r.users))
	for _, usr := range r.users {
		result = append(result, *usr)
	}
	return result, nil
}

func (r *fakeUserRepo) ListByFamily(ctx context.Context, familyID string) ([]User, error) {
	result := make([]User, 0)
	for _, usr := range r.users {
		if usr.FamilyID != nil && *usr.FamilyID == familyID {
			result = append(result, *usr)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, usr *User) error {
	copied := *usr
	r.users[usr.ID] = &copied
	r.emails[usr.Email] = usr.ID
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, usr *User) error {
	existing, ok := r.users[usr.ID]
	if !ok {
		return ErrNotFound
	}
	delete(r.emails, existing.Email)
	existing.FirstName = usr.FirstName
	existing.LastName = usr.LastName
	existing.Email = usr.Email
	existing.FamilyID = usr.FamilyID
	existing.Role = usr.Role
	existing.UpdatedBy = usr.UpdatedBy
	r.emails[usr.Email] = usr.ID
	return nil
}

func (r *fakeUserRepo) UpdateToken(ctx context.Context, id, token string) error {
	usr, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	usr.Token = token
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	usr, ok := r.users[id]
	if ok {
		delete(r.emails, usr.Email)
	}
	delete(r.users, id)
	return nil
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie@example.com",
		Password:  "s3cret42",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Password == "s3cret42" {
		t.Fatalf("expected password hashed, got plaintext")
	}
	if result.CreatedBy != result.ID {
		t.Fatalf("expected created_by set to own id, got %q", result.CreatedBy)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie@example.com",
		Password:  "s3cret42",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	usr, err := svc.Authenticate(context.Background(), "marie@example.com", "s3cret42")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if usr.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, usr.ID)
	}

	if _, err := svc.Authenticate(context.Background(), "marie@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret42"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestVerifyTokenRevocation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie@example.com",
		Password:  "s3cret42",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := svc.SetToken(context.Background(), created.ID, "tok-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	usr, err := svc.VerifyToken(context.Background(), created.ID, "tok-1")
	if err != nil {
		t.Fatalf("expected token accepted, got %v", err)
	}
	if usr.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, usr.ID)
	}

	if _, err := svc.VerifyToken(context.Background(), created.ID, "tok-2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected stale token rejected, got %v", err)
	}

	if err := svc.ClearToken(context.Background(), created.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.VerifyToken(context.Background(), created.ID, "tok-1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected revoked token rejected, got %v", err)
	}
}

func TestUpdateUserMissing(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), UpdateInput{ID: "missing", Email: "x@example.com"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
