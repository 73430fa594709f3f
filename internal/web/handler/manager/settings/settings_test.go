package settings

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/auth"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/config"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/setting"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

const testSecret = "test-secret"

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	journal *models.Journal
}

func newTestEnv(t *testing.T, primaryLocale string) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Journal{},
		&models.JournalSetting{},
	))

	journal := models.Journal{Path: "test", Title: "Test Journal", PrimaryLocale: primaryLocale}
	require.NoError(t, db.Create(&journal).Error)

	cfg := &config.Config{
		Webserver: config.Webserver{
			URL:       "http://localhost",
			Port:      3000,
			JWTSecret: testSecret,
			Token:     config.Token{ExpiryTime: time.Hour},
		},
	}

	app := fiber.New()
	app.Use(auth.Middleware(auth.NewService(db), testSecret))
	require.NoError(t, Handler.Init(app, cfg, db))

	return &testEnv{app: app, db: db, journal: &journal}
}

func (e *testEnv) user(t *testing.T, rolePaths ...string) *models.User {
	t.Helper()

	user := models.User{
		Email:    "user-" + strings.Join(rolePaths, "-") + "@example.org",
		Password: models.HashPassword("s3cret"),
		Active:   true,
	}
	for _, p := range rolePaths {
		user.Roles = append(user.Roles, models.UserRole{RolePath: p})
	}
	require.NoError(t, e.db.Create(&user).Error)

	return &user
}

func (e *testEnv) request(t *testing.T, method, target, body string, as *models.User) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	if as != nil {
		token, err := auth.IssueToken(testSecret, as.ID, time.Hour)
		require.NoError(t, err)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	return body
}

func (e *testEnv) groupURL(group string) string {
	return "/api/manager/journals/" + e.journal.ID + "/settings/" + group
}

func TestGet(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		resp := env.request(t, fiber.MethodGet, env.groupURL("website"), "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("requires a manager role", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		reviewer := env.user(t, models.RoleReviewer)
		resp := env.request(t, fiber.MethodGet, env.groupURL("website"), "", reviewer)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("unknown group", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		manager := env.user(t, models.RoleManager)
		resp := env.request(t, fiber.MethodGet, env.groupURL("nope"), "", manager)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("unknown journal", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		manager := env.user(t, models.RoleManager)
		resp := env.request(t, fiber.MethodGet,
			"/api/manager/journals/missing/settings/website", "", manager)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("unset fields resolve to their defaults", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		manager := env.user(t, models.RoleManager)

		resp := env.request(t, fiber.MethodGet, env.groupURL("website"), "", manager)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "en_US", body["locale"])

		values, ok := body["settings"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "default", values["activeTheme"])
		assert.Equal(t, float64(25), values["itemsPerPage"])
		assert.Equal(t, false, values["enableAnnouncements"])
		assert.Equal(t, "UTC", values["timeZone"])
		assert.Equal(t, []any{"en_US"}, values["supportedLocales"])
	})

	t.Run("locale specific value wins over the default row", func(t *testing.T) {
		env := newTestEnv(t, "id_ID")
		manager := env.user(t, models.RoleManager)

		require.NoError(t, setting.Write(env.db, env.journal.ID,
			"activeTheme", "default", setting.TypeString, ""))
		require.NoError(t, setting.Write(env.db, env.journal.ID,
			"activeTheme", "batik", setting.TypeString, "id_ID"))

		resp := env.request(t, fiber.MethodGet, env.groupURL("website"), "", manager)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		values := body["settings"].(map[string]any)
		assert.Equal(t, "batik", values["activeTheme"])
	})
}

func TestPut(t *testing.T) {
	t.Run("roundtrip through the store", func(t *testing.T) {
		env := newTestEnv(t, "id_ID")
		manager := env.user(t, models.RoleManager)

		resp := env.request(t, fiber.MethodPut, env.groupURL("website"),
			`{"activeTheme":"batik","enableAnnouncements":true,"itemsPerPage":10,"name":"Jurnal Ilmiah"}`,
			manager)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		applied, ok := body["applied"].([]any)
		require.True(t, ok)
		assert.Len(t, applied, 4)

		resp = env.request(t, fiber.MethodGet, env.groupURL("website"), "", manager)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		values := decodeBody(t, resp)["settings"].(map[string]any)
		assert.Equal(t, "batik", values["activeTheme"])
		assert.Equal(t, true, values["enableAnnouncements"])
		assert.Equal(t, float64(10), values["itemsPerPage"])
		assert.Equal(t, "Jurnal Ilmiah", values["name"])
	})

	t.Run("localized fields land on the primary locale row", func(t *testing.T) {
		env := newTestEnv(t, "id_ID")
		manager := env.user(t, models.RoleManager)

		resp := env.request(t, fiber.MethodPut, env.groupURL("website"),
			`{"name":"Jurnal Ilmiah","pageFooter":"footer"}`, manager)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var rows []models.JournalSetting
		require.NoError(t, env.db.Where("journal_id = ?", env.journal.ID).Find(&rows).Error)

		locales := map[string]string{}
		for _, row := range rows {
			locales[row.SettingName] = row.Locale
		}
		assert.Equal(t, "id_ID", locales["name"])
		assert.Equal(t, "", locales["pageFooter"])
	})

	t.Run("fields absent from the body stay untouched", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		manager := env.user(t, models.RoleManager)

		require.NoError(t, setting.Write(env.db, env.journal.ID,
			"customCss", "body{}", setting.TypeString, ""))

		resp := env.request(t, fiber.MethodPut, env.groupURL("website"),
			`{"activeTheme":"other"}`, manager)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = env.request(t, fiber.MethodGet, env.groupURL("website"), "", manager)
		values := decodeBody(t, resp)["settings"].(map[string]any)
		assert.Equal(t, "body{}", values["customCss"])
	})

	t.Run("type mismatch is rejected", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		manager := env.user(t, models.RoleManager)

		resp := env.request(t, fiber.MethodPut, env.groupURL("website"),
			`{"enableAnnouncements":"yes"}`, manager)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("email fields are validated", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		manager := env.user(t, models.RoleManager)

		resp := env.request(t, fiber.MethodPut, env.groupURL("context"),
			`{"contactEmail":"not-an-email"}`, manager)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		resp = env.request(t, fiber.MethodPut, env.groupURL("context"),
			`{"contactEmail":"office@example.org"}`, manager)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("workflow numbers accept string form", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		manager := env.user(t, models.RoleManager)

		resp := env.request(t, fiber.MethodPut, env.groupURL("workflow"),
			`{"review_numWeeksPerReview":"8","review_defaultReviewMode":"open"}`, manager)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = env.request(t, fiber.MethodGet, env.groupURL("workflow"), "", manager)
		values := decodeBody(t, resp)["settings"].(map[string]any)
		assert.Equal(t, float64(8), values["review_numWeeksPerReview"])
		assert.Equal(t, "open", values["review_defaultReviewMode"])
	})

	t.Run("object fields roundtrip", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		manager := env.user(t, models.RoleManager)

		resp := env.request(t, fiber.MethodPut, env.groupURL("distribution"),
			`{"payments":{"paymentsEnabled":true,"currency":"IDR"}}`, manager)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = env.request(t, fiber.MethodGet, env.groupURL("distribution"), "", manager)
		values := decodeBody(t, resp)["settings"].(map[string]any)

		payments, ok := values["payments"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, payments["paymentsEnabled"])
		assert.Equal(t, "IDR", payments["currency"])

		// unset object falls back to its default
		license, ok := values["license"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "author", license["copyrightHolderType"])
	})

	t.Run("admin may also change settings", func(t *testing.T) {
		env := newTestEnv(t, "en_US")
		admin := env.user(t, models.RoleAdmin)

		resp := env.request(t, fiber.MethodPut, env.groupURL("access"),
			`{"allowRegistrations":true,"sessionLifetime":60}`, admin)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = env.request(t, fiber.MethodGet, env.groupURL("access"), "", admin)
		values := decodeBody(t, resp)["settings"].(map[string]any)
		assert.Equal(t, true, values["allowRegistrations"])
		assert.Equal(t, float64(60), values["sessionLifetime"])
	})
}
