package e2e_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkToken(t *testing.T, secret string, thumbnailID uuid.UUID, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"thumbnail_id": thumbnailID.String(),
		"exp":          expiresAt.Unix(),
		"iat":          time.Now().Unix(),
		"iss":          "imgtier",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestE2EExpiringLinks(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	premiumID := app.seedTier(t, "Premium", []int{200}, true, false)
	token := app.registerAndLogin(t, "linker@example.com")
	app.assignTier(t, "linker@example.com", premiumID)

	resp := app.uploadImage(t, token, "photo.png", pngImage(t, 400, 300), map[string]string{
		"expiring_link_seconds": "300",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploaded uploadResponse
	parseResponse(t, resp, &uploaded)
	require.Len(t, uploaded.Thumbnails, 1)
	require.NotNil(t, uploaded.Thumbnails[0].ExpiringLink)
	thumbnailID := uploaded.Thumbnails[0].ID

	t.Run("a fresh link resolves without authentication", func(t *testing.T) {
		resp, err := app.get("/links/"+*uploaded.Thumbnails[0].ExpiringLink, nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("Location"))
	})

	t.Run("an expired link is gone", func(t *testing.T) {
		id, err := uuid.Parse(thumbnailID)
		require.NoError(t, err)
		stale := linkToken(t, testLinkSecret, id, time.Now().Add(-time.Minute))

		resp, err := app.get("/links/"+stale, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusGone, resp.StatusCode)

		var errResp map[string]any
		parseResponse(t, resp, &errResp)
		assert.Equal(t, "LINK_EXPIRED", errResp["code"])
	})

	t.Run("a token signed with another secret is rejected", func(t *testing.T) {
		id, err := uuid.Parse(thumbnailID)
		require.NoError(t, err)
		forged := linkToken(t, "some-other-secret", id, time.Now().Add(time.Hour))

		resp, err := app.get("/links/"+forged, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var errResp map[string]any
		parseResponse(t, resp, &errResp)
		assert.Equal(t, "INVALID_SIGNATURE", errResp["code"])
	})

	t.Run("a valid token for a deleted thumbnail is not found", func(t *testing.T) {
		orphan := linkToken(t, testLinkSecret, uuid.New(), time.Now().Add(time.Hour))

		resp, err := app.get("/links/"+orphan, nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
