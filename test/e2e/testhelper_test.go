package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/pixelforge/imgtier/internal/adapter/handler"
	pgRepo "github.com/pixelforge/imgtier/internal/adapter/repository/postgres"
	infraauth "github.com/pixelforge/imgtier/internal/infrastructure/auth"
	"github.com/pixelforge/imgtier/internal/infrastructure/database"
	"github.com/pixelforge/imgtier/internal/infrastructure/middleware"
	"github.com/pixelforge/imgtier/internal/infrastructure/server"
	infrastorage "github.com/pixelforge/imgtier/internal/infrastructure/storage"
	"github.com/pixelforge/imgtier/internal/infrastructure/token"
	authUC "github.com/pixelforge/imgtier/internal/usecase/auth"
	thumbnailUC "github.com/pixelforge/imgtier/internal/usecase/thumbnail"
	tierUC "github.com/pixelforge/imgtier/internal/usecase/tier"
	uploadUC "github.com/pixelforge/imgtier/internal/usecase/upload"
)

const (
	testDBUser      = "testuser"
	testDBPassword  = "testpass"
	testDBName      = "testdb"
	testJWTSecret   = "test-secret-key-for-e2e-tests"
	testLinkSecret  = "test-link-secret-for-e2e-tests"
	defaultTierName = "Basic"
	apiBasePath     = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Assets     *memoryAssetStorage
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	userRepo := pgRepo.NewUserRepo(pool)
	tierRepo := pgRepo.NewTierRepo(pool)
	imageRepo := pgRepo.NewImageRepo(pool)
	thumbnailRepo := pgRepo.NewThumbnailRepo(pool)

	jwtSvc := infraauth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := infraauth.NewPasswordHasher(4) // Lower cost for faster tests
	signer := token.NewSigner(testLinkSecret)

	// In-memory storage keeps e2e runs S3-free while the image pipeline
	// stays real.
	assets := newMemoryAssetStorage()
	normalizer := infrastorage.NewNormalizer()
	thumbnailer := infrastorage.NewThumbnailer()

	authSvc := authUC.NewService(userRepo, tierRepo, jwtSvc, passwordHasher, defaultTierName)
	tierSvc := tierUC.NewService(tierRepo, userRepo)
	uploadSvc := uploadUC.NewService(userRepo, tierRepo, imageRepo, thumbnailRepo, assets, normalizer, thumbnailer, signer)
	thumbnailSvc := thumbnailUC.NewService(thumbnailRepo, assets, signer)

	logger, _ := zap.NewDevelopment()
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:      handler.NewAuthHandler(authSvc),
		TierHandler:      handler.NewTierHandler(tierSvc),
		UploadHandler:    handler.NewUploadHandler(uploadSvc),
		ThumbnailHandler: handler.NewThumbnailHandler(thumbnailSvc),
		AuthMiddleware:   middleware.NewAuthMiddleware(jwtSvc),
		Logger:           logger,
		Environment:      "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Assets:    assets,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	if err := app.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

// uploadImage posts a multipart upload with optional extra form fields.
func (app *TestApp) uploadImage(t *testing.T, token, fileName string, fileContent []byte, fields map[string]string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, fileName))
	h.Set("Content-Type", "application/octet-stream")

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(fileContent)
	require.NoError(t, err)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+"/images", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// seedTier inserts a tier directly; tier management over the API is itself
// under test elsewhere.
func (app *TestApp) seedTier(t *testing.T, name string, sizes []int, allowExpiringLinks, allowOriginalLink bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	sizesJSON, err := json.Marshal(sizes)
	require.NoError(t, err)

	_, err = app.Pool.Exec(context.Background(), `
		INSERT INTO tiers (id, name, thumbnail_sizes, allow_expiring_links, allow_original_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`, id, name, sizesJSON, allowExpiringLinks, allowOriginalLink)
	require.NoError(t, err)
	return id
}

func (app *TestApp) assignTier(t *testing.T, email string, tierID uuid.UUID) {
	t.Helper()

	tag, err := app.Pool.Exec(context.Background(),
		`UPDATE users SET tier_id = $2 WHERE email = $1`, email, tierID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// registerAndLogin creates an account over the API and returns its access
// token.
func (app *TestApp) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	resp, err := app.post("/auth/register", map[string]string{
		"email":    email,
		"password": "password123",
		"name":     "E2E User",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.post("/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	parseResponse(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}

func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
