package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

type fakeUserRepo struct {
	user    *entity.User
	findErr error
	updated *entity.User
}

func (f *fakeUserRepo) SelectAll(_ context.Context, _ string) ([]entity.User, error) {
	if f.user == nil {
		return nil, nil
	}
	return []entity.User{*f.user}, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	copied := *f.user
	return &copied, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, _ string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, _ *entity.User) error { return nil }

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.updated = user
	return nil
}

func (f *fakeUserRepo) DeleteByID(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeUserRepo) DeleteAllExcept(_ context.Context, _ uuid.UUID) error { return nil }

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(_, _ string) error { return nil }

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

func TestUpdateUserMissingUserReturnsNotFound(t *testing.T) {
	repo := &fakeUserRepo{findErr: domainerror.ErrUserNotFound}
	uc := NewUpdateUserUseCase(repo, fakePasswordService{})

	active := true
	_, err := uc.Execute(context.Background(), UpdateUserInput{
		ActingUserID: uuid.New(),
		UserID:       uuid.New(),
		Active:       &active,
	})
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestUpdateUserSurfacesLoadFailure(t *testing.T) {
	loadErr := errors.New("connection reset")
	repo := &fakeUserRepo{findErr: loadErr}
	uc := NewUpdateUserUseCase(repo, fakePasswordService{})

	active := true
	_, err := uc.Execute(context.Background(), UpdateUserInput{
		ActingUserID: uuid.New(),
		UserID:       uuid.New(),
		Active:       &active,
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, domainerror.ErrUserNotFound) {
		t.Fatal("expected load failure to stay distinct from user not found")
	}
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected error to wrap the load failure, got %v", err)
	}
}

func TestUpdateUserDeactivatesAnotherUser(t *testing.T) {
	actingID := uuid.New()
	targetID := uuid.New()
	repo := &fakeUserRepo{user: &entity.User{
		ID:       targetID,
		Username: "lina",
		Role:     entity.RoleUser,
		Active:   true,
	}}
	uc := NewUpdateUserUseCase(repo, fakePasswordService{})

	active := false
	out, err := uc.Execute(context.Background(), UpdateUserInput{
		ActingUserID: actingID,
		UserID:       targetID,
		Active:       &active,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.User.Active {
		t.Error("expected user to be deactivated")
	}
	if repo.updated == nil || repo.updated.Active {
		t.Error("expected the deactivation to be persisted")
	}
}

func TestUpdateUserCannotDeactivateSelf(t *testing.T) {
	actingID := uuid.New()
	repo := &fakeUserRepo{user: &entity.User{
		ID:       actingID,
		Username: "aisha",
		Role:     entity.RoleAdministrator,
		Active:   true,
	}}
	uc := NewUpdateUserUseCase(repo, fakePasswordService{})

	active := false
	_, err := uc.Execute(context.Background(), UpdateUserInput{
		ActingUserID: actingID,
		UserID:       actingID,
		Active:       &active,
	})
	if !errors.Is(err, domainerror.ErrCannotDeactivateSelf) {
		t.Fatalf("expected self-deactivation to be rejected, got %v", err)
	}
}
