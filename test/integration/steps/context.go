// Package steps provides step definitions for BDD integration tests.
//
// The suite boots the real application once: sqlite in place of Postgres,
// miniredis in place of Redis, and the full router with authentication and
// permission gates enabled. Scenarios talk to it over HTTP like any client.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/config"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
	"github.com/dapur-ledger/backend/internal/infra/dependency"
	"github.com/dapur-ledger/backend/internal/integration/persistence/model"
	"github.com/dapur-ledger/backend/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	defaultPassword = "SecurePass123!"
)

var (
	appInit      sync.Once
	testDB       *mock.Db
	testInjector *dependency.Injector
	testServer   *httptest.Server
)

// testContext holds the per-scenario state.
type testContext struct {
	client   *http.Client
	headers  map[string]string
	response *response

	accessToken  string
	refreshToken string

	// Known credentials for users seeded by Given steps.
	passwords map[string]string

	lastTransactionID uuid.UUID
	lastOrderID       uuid.UUID
	lastCategoryID    uuid.UUID
	lastUserID        uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite boots the shared application before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
		startApp()
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startApp()

	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.reset()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User and session setup
	ctx.Given(`^a user "([^"]*)" exists with role "([^"]*)"$`, test.aUserExistsWithRole)
	ctx.Given(`^a user "([^"]*)" exists with role "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithRoleAndPassword)
	ctx.Given(`^an inactive user "([^"]*)" exists with role "([^"]*)"$`, test.anInactiveUserExistsWithRole)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am logged in as "([^"]*)" with role "([^"]*)"$`, test.iAmLoggedInAsWithRole)

	// Permission setup
	ctx.Given(`^the "([^"]*)" role has "([^"]*)" permission "([^"]*)" set to "([^"]*)"$`, test.theRoleHasPermissionSetTo)

	// Data setup
	ctx.Given(`^a category "([^"]*)" of type "([^"]*)" exists$`, test.aCategoryOfTypeExists)
	ctx.Given(`^the following transactions exist:$`, test.theFollowingTransactionsExist)
	ctx.Given(`^the following orders exist:$`, test.theFollowingOrdersExist)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func startApp() {
	appInit.Do(func() {
		gin.SetMode(gin.TestMode)

		testDB = mock.NewDb("dapur_ledger", map[string]any{
			"users":              &model.UserModel{},
			"refresh_tokens":     &model.RefreshTokenModel{},
			"transactions":       &model.TransactionModel{},
			"categories":         &model.CategoryModel{},
			"orders":             &model.OrderModel{},
			"role_permissions":   &model.RolePermissionModel{},
			"notification_queue": &model.NotificationQueueModel{},
		})

		testInjector = dependency.NewInjector(testConfig(), testDB.DbConn, mock.NewRedis())
		engine := testInjector.Router.Setup("test")
		testServer = httptest.NewServer(engine)
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Environment: "test",
		},
		JWT: config.JWTConfig{
			Secret:             testJWTSecret,
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 7 * 24 * time.Hour,
		},
	}
}

// reset wipes scenario state and restores the default permission matrix so
// scenarios cannot leak grants into each other.
func (t *testContext) reset() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.passwords = make(map[string]string)
	t.lastTransactionID = uuid.Nil
	t.lastOrderID = uuid.Nil
	t.lastCategoryID = uuid.Nil
	t.lastUserID = uuid.Nil

	if err := testDB.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	return testInjector.PermissionRepo.Seed(context.Background(), rbac.DefaultMatrix())
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(testServer.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}
