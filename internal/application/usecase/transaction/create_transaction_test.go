package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// fakeTransactionRepo records inserts in memory.
type fakeTransactionRepo struct {
	inserted []*entity.Transaction
	fail     bool
}

func (f *fakeTransactionRepo) SelectAll(_ context.Context, _ string) ([]entity.Transaction, error) {
	out := make([]entity.Transaction, len(f.inserted))
	for i, t := range f.inserted {
		out[i] = *t
	}
	return out, nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range f.inserted {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) Insert(_ context.Context, t *entity.Transaction) error {
	if f.fail {
		return errors.New("db down")
	}
	f.inserted = append(f.inserted, t)
	return nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (f *fakeTransactionRepo) DeleteByID(_ context.Context, _ uuid.UUID) error       { return nil }
func (f *fakeTransactionRepo) RenameCategory(_ context.Context, _, _ string) (int64, error) {
	return 0, nil
}
func (f *fakeTransactionRepo) DeleteAll(_ context.Context) error { return nil }

// fakeCategoryRepo knows a fixed set of category names per type.
type fakeCategoryRepo struct {
	known map[entity.CategoryType][]string
}

func (f *fakeCategoryRepo) ExistsByNameAndType(_ context.Context, name string, t entity.CategoryType) (bool, error) {
	for _, n := range f.known[t] {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) SelectAll(_ context.Context, _ string) ([]entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}
func (f *fakeCategoryRepo) FindByType(_ context.Context, _ entity.CategoryType) ([]entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Insert(_ context.Context, _ *entity.Category) error       { return nil }
func (f *fakeCategoryRepo) Update(_ context.Context, _ *entity.Category) error       { return nil }
func (f *fakeCategoryRepo) SwapSortOrder(_ context.Context, _, _ *entity.Category) error {
	return nil
}
func (f *fakeCategoryRepo) DeleteByID(_ context.Context, _ uuid.UUID) error { return nil }
func (f *fakeCategoryRepo) NextSortOrder(_ context.Context, _ entity.CategoryType) (int, error) {
	return 0, nil
}
func (f *fakeCategoryRepo) DeleteAll(_ context.Context) error { return nil }

func newFakes() (*fakeTransactionRepo, *fakeCategoryRepo) {
	return &fakeTransactionRepo{}, &fakeCategoryRepo{
		known: map[entity.CategoryType][]string{
			entity.CategoryTypeIncome:  {"Direct Orkid", "Delivery"},
			entity.CategoryTypeExpense: {"Ingredients"},
		},
	}
}

func validInput() CreateTransactionInput {
	return CreateTransactionInput{
		Type:          entity.TransactionTypeIncome,
		Amount:        decimal.NewFromInt(10),
		Quantity:      decimal.NewFromInt(2),
		Category:      "Direct Orkid",
		PaymentMethod: entity.PaymentMethodCash,
		Date:          time.Date(2024, time.January, 5, 13, 30, 0, 0, time.UTC),
	}
}

func TestCreateTransactionComputesTotal(t *testing.T) {
	txRepo, catRepo := newFakes()
	uc := NewCreateTransactionUseCase(txRepo, catRepo)

	output, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Transaction.TotalAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("TotalAmount = %s, want 20", output.Transaction.TotalAmount)
	}
	// Dates are normalized to midnight UTC calendar dates.
	if got := output.Transaction.Date; got.Hour() != 0 || got.Location() != time.UTC {
		t.Errorf("Date = %v, want midnight UTC", got)
	}
	if len(txRepo.inserted) != 1 {
		t.Fatalf("inserted %d transactions, want 1", len(txRepo.inserted))
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateTransactionInput)
		wantErr error
	}{
		{
			name:    "non-positive amount",
			mutate:  func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-5) },
			wantErr: domainerror.ErrNonPositiveAmount,
		},
		{
			name:    "zero amount",
			mutate:  func(in *CreateTransactionInput) { in.Amount = decimal.Decimal{} },
			wantErr: domainerror.ErrNonPositiveAmount,
		},
		{
			name:    "negative quantity",
			mutate:  func(in *CreateTransactionInput) { in.Quantity = decimal.NewFromInt(-1) },
			wantErr: domainerror.ErrNonPositiveQuantity,
		},
		{
			name:    "bad type",
			mutate:  func(in *CreateTransactionInput) { in.Type = "transfer" },
			wantErr: domainerror.ErrInvalidTransactionType,
		},
		{
			name:    "bad payment method",
			mutate:  func(in *CreateTransactionInput) { in.PaymentMethod = "cheque" },
			wantErr: domainerror.ErrInvalidPaymentMethod,
		},
		{
			name:    "unknown category",
			mutate:  func(in *CreateTransactionInput) { in.Category = "Mystery" },
			wantErr: domainerror.ErrUnknownCategory,
		},
		{
			name:    "category of the wrong type",
			mutate:  func(in *CreateTransactionInput) { in.Category = "Ingredients" },
			wantErr: domainerror.ErrUnknownCategory,
		},
		{
			name:    "missing category",
			mutate:  func(in *CreateTransactionInput) { in.Category = "" },
			wantErr: domainerror.ErrMissingTransactionFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRepo, catRepo := newFakes()
			uc := NewCreateTransactionUseCase(txRepo, catRepo)

			input := validInput()
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if len(txRepo.inserted) != 0 {
				t.Error("invalid input must not reach the repository")
			}
		})
	}
}

func TestCreateTransactionDefaultsQuantityToOne(t *testing.T) {
	txRepo, catRepo := newFakes()
	uc := NewCreateTransactionUseCase(txRepo, catRepo)

	input := validInput()
	input.Quantity = decimal.Decimal{}

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !output.Transaction.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Quantity = %s, want 1", output.Transaction.Quantity)
	}
	if !output.Transaction.TotalAmount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("TotalAmount = %s, want 10", output.Transaction.TotalAmount)
	}
}
