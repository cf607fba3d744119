package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/dapur-ledger/backend/internal/domain/entity"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
	"github.com/dapur-ledger/backend/internal/integration/persistence/model"
	"github.com/dapur-ledger/backend/test/integration/mock"
)

func (t *testContext) aUserExistsWithRole(username, role string) error {
	return t.createUser(username, role, defaultPassword, true)
}

func (t *testContext) aUserExistsWithRoleAndPassword(username, role, password string) error {
	return t.createUser(username, role, password, true)
}

func (t *testContext) anInactiveUserExistsWithRole(username, role string) error {
	return t.createUser(username, role, defaultPassword, false)
}

func (t *testContext) createUser(username, role, password string, active bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := testDB.DbConn.Create(user).Error; err != nil {
		return err
	}

	t.passwords[username] = password
	t.lastUserID = user.ID
	return nil
}

// iAmLoggedInAs logs in through the real login endpoint so the scenario holds
// tokens the server actually issued.
func (t *testContext) iAmLoggedInAs(username string) error {
	password, ok := t.passwords[username]
	if !ok {
		return fmt.Errorf("no seeded user %q to log in as", username)
	}

	payload, err := json.Marshal(map[string]any{
		"username":   username,
		"password":   password,
		"rememberMe": false,
	})
	if err != nil {
		return err
	}

	resp, err := t.client.Post(testServer.URL+"/api/v1/auth/login", "application/json", strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login as %q failed with status %d", username, resp.StatusCode)
	}

	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}

	t.accessToken = body.AccessToken
	t.refreshToken = body.RefreshToken
	return nil
}

func (t *testContext) iAmLoggedInAsWithRole(username, role string) error {
	if err := t.createUser(username, role, defaultPassword, true); err != nil {
		return err
	}
	return t.iAmLoggedInAs(username)
}

// theRoleHasPermissionSetTo flips one permission leaf directly in the store,
// bypassing the admin endpoint, so gate scenarios can arrange any grant shape.
func (t *testContext) theRoleHasPermissionSetTo(role, category, action, value string) error {
	ctx := context.Background()

	matrix, err := testInjector.PermissionRepo.Load(ctx)
	if err != nil {
		return err
	}

	next := rbac.UpdatePermission(matrix, entity.Role(role), rbac.Category(category), rbac.Action(action), value == "true")
	if err := testInjector.PermissionRepo.SaveRole(ctx, entity.Role(role), next[entity.Role(role)]); err != nil {
		return err
	}

	// Drop the cached matrix so the change is visible on the next request.
	return mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) aCategoryOfTypeExists(name, categoryType string) error {
	var count int64
	if err := testDB.DbConn.Model(&model.CategoryModel{}).Where("type = ?", categoryType).Count(&count).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		SortOrder: int(count),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := testDB.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}

	t.lastCategoryID = categoryModel.ID
	return nil
}

// theFollowingTransactionsExist seeds the ledger from a table with columns
// type, amount, quantity, category, paymentMethod and date.
func (t *testContext) theFollowingTransactionsExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}

		quantity := decimal.NewFromInt(1)
		if raw, ok := row["quantity"]; ok && raw != "" {
			quantity, err = decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", raw, err)
			}
		}

		date, err := time.Parse("2006-01-02", row["date"])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", row["date"], err)
		}

		total := amount.Mul(quantity)
		now := time.Now().UTC()
		transactionModel := &model.TransactionModel{
			ID:            uuid.New(),
			Type:          row["type"],
			Amount:        amount,
			Quantity:      quantity,
			TotalAmount:   &total,
			Category:      row["category"],
			Description:   row["description"],
			PaymentMethod: row["paymentMethod"],
			Date:          date,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := testDB.DbConn.Create(transactionModel).Error; err != nil {
			return err
		}
		t.lastTransactionID = transactionModel.ID
	}

	return nil
}

// theFollowingOrdersExist seeds orders from a table with columns name,
// orderDate, set, quantity, deliveryType, paymentStatus and deliveryStatus.
func (t *testContext) theFollowingOrdersExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		quantity, err := decimal.NewFromString(row["quantity"])
		if err != nil {
			return fmt.Errorf("invalid quantity %q: %w", row["quantity"], err)
		}

		orderDate, err := time.Parse("2006-01-02", row["orderDate"])
		if err != nil {
			return fmt.Errorf("invalid orderDate %q: %w", row["orderDate"], err)
		}

		now := time.Now().UTC()
		orderModel := &model.OrderModel{
			ID:             uuid.New(),
			Name:           row["name"],
			OrderDate:      orderDate,
			Set:            row["set"],
			Quantity:       quantity,
			DeliveryType:   row["deliveryType"],
			PaymentStatus:  row["paymentStatus"],
			DeliveryStatus: row["deliveryStatus"],
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if err := testDB.DbConn.Create(orderModel).Error; err != nil {
			return err
		}
		t.lastOrderID = orderModel.ID
	}

	return nil
}

// tableRows converts a godog table with a header row into one map per row.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one data row")
	}

	header := make([]string, 0, len(table.Rows[0].Cells))
	for _, cell := range table.Rows[0].Cells {
		header = append(header, cell.Value)
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, tableRow := range table.Rows[1:] {
		if len(tableRow.Cells) != len(header) {
			return nil, fmt.Errorf("row has %d cells, header has %d", len(tableRow.Cells), len(header))
		}
		row := make(map[string]string, len(header))
		for i, cell := range tableRow.Cells {
			row[header[i]] = cell.Value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}
