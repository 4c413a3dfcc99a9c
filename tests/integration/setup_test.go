package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	adaptershttp "github.com/akosua/remitgh/internal/adapter/http"
	"github.com/akosua/remitgh/internal/adapter/http/dto"
	"github.com/akosua/remitgh/internal/adapter/http/handler"
	postgresrepo "github.com/akosua/remitgh/internal/adapter/repository/postgres"
	redisrepo "github.com/akosua/remitgh/internal/adapter/repository/redis"
	"github.com/akosua/remitgh/internal/infrastructure/auth"
	"github.com/akosua/remitgh/internal/infrastructure/gateway"
	"github.com/akosua/remitgh/internal/infrastructure/rates"
	infraredis "github.com/akosua/remitgh/internal/infrastructure/redis"
	"github.com/akosua/remitgh/internal/usecase"
	"github.com/akosua/remitgh/tests/testutil"
)

type testEnv struct {
	router http.Handler
	db     *testutil.TestDB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	txManager := postgresrepo.NewTxManager(pool)
	userRepo := postgresrepo.NewUserRepository(pool)
	recipientRepo := postgresrepo.NewRecipientRepository(pool)
	txnRepo := postgresrepo.NewTransactionRepository(pool)
	outboxRepo := postgresrepo.NewOutboxRepository(pool)
	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)
	idGen := postgresrepo.NewULIDGenerator()

	sandbox := gateway.NewSandboxGateway(gateway.SandboxConfig{
		Latency: time.Millisecond,
		Logger:  zerolog.Nop(),
	})
	paymentGateway := gateway.NewRetryingGateway(sandbox, 3, zerolog.Nop())

	jwtManager := auth.NewJWTManager("integration-secret", time.Hour)

	rateUC := usecase.NewRateUseCase(rates.NewBoardProvider(nil), cache)
	userUC := usecase.NewUserUseCase(userRepo, cache, idGen, jwtManager)
	recipientUC := usecase.NewRecipientUseCase(recipientRepo, idGen)
	transferUC := usecase.NewTransferUseCase(rateUC, userRepo, txManager, txnRepo, outboxRepo, paymentGateway, idGen, nil)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AuthHandler:      handler.NewAuthHandler(userUC),
		RateHandler:      handler.NewRateHandler(rateUC),
		RecipientHandler: handler.NewRecipientHandler(recipientUC),
		TransferHandler:  handler.NewTransferHandler(transferUC, recipientUC),
		HealthHandler:    handler.NewHealthHandler(nil),
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		Logger:           zerolog.Nop(),
	})

	return &testEnv{router: router, db: testDB}
}

// do sends a JSON request through the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, buildRequest(t, method, path, token, payload))
	return rec
}

func buildRequest(t *testing.T, method, path, token string, payload any) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// login authenticates a fixture user and returns the session token.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: testutil.TestPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %s: %v", rec.Body.String(), err)
	}
	return out
}
