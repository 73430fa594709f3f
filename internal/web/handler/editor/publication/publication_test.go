package publication

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
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/auth"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/config"
	pubctl "github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/publication"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

const testSecret = "test-secret"

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Submission{},
		&models.SubmissionVersion{},
		&models.ActivityLog{},
	))

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

	return &testEnv{app: app, db: db}
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

func (e *testEnv) submission(t *testing.T, authorID, status, metadata string) (*models.Submission, *models.SubmissionVersion) {
	t.Helper()

	sub := models.Submission{JournalID: "j1", AuthorID: authorID, Title: "Original"}
	require.NoError(t, e.db.Create(&sub).Error)

	ver := models.SubmissionVersion{
		SubmissionID: sub.ID,
		Version:      1,
		Status:       status,
		Metadata:     datatypes.JSON(metadata),
	}
	require.NoError(t, e.db.Create(&ver).Error)

	return &sub, &ver
}

// request sends a JSON request, optionally authenticated as the given user.
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

func metadataURL(subID, verID string) string {
	return "/api/editor/submissions/" + subID + "/publications/" + verID + "/metadata"
}

func TestPatchMetadata(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		env := newTestEnv(t)
		sub, ver := env.submission(t, "u-author", models.VersionStatusDraft, `{}`)

		resp := env.request(t, fiber.MethodPatch, metadataURL(sub.ID, ver.ID), `{"title":"New"}`, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("editor patches any version", func(t *testing.T) {
		env := newTestEnv(t)
		editor := env.user(t, models.RoleEditor)
		sub, ver := env.submission(t, "someone-else", models.VersionStatusPublished,
			`{"abstract":"Kept","extra":"survives"}`)

		resp := env.request(t, fiber.MethodPatch, metadataURL(sub.ID, ver.ID), `{"title":"New"}`, editor)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["ok"])

		metadata, ok := body["metadata"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "New", metadata["title"])
		assert.Equal(t, "Kept", metadata["abstract"])
		assert.Equal(t, "survives", metadata["extra"])
	})

	t.Run("author patches own draft", func(t *testing.T) {
		env := newTestEnv(t)
		author := env.user(t, models.RoleAuthor)
		sub, ver := env.submission(t, author.ID, models.VersionStatusDraft, `{}`)

		resp := env.request(t, fiber.MethodPatch, metadataURL(sub.ID, ver.ID), `{"title":"Mine"}`, author)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("author locked out of published version", func(t *testing.T) {
		env := newTestEnv(t)
		author := env.user(t, models.RoleAuthor)
		sub, ver := env.submission(t, author.ID, models.VersionStatusPublished, `{"title":"Locked"}`)

		resp := env.request(t, fiber.MethodPatch, metadataURL(sub.ID, ver.ID), `{"title":"Nope"}`, author)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, "published versions cannot be edited; create a new version", body["error"])

		// metadata stayed untouched
		stored, err := pubctl.GetVersion(env.db, sub.ID, ver.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Locked"}`, string(stored.Metadata))
	})

	t.Run("neither editor nor author", func(t *testing.T) {
		env := newTestEnv(t)
		stranger := env.user(t, models.RoleReader)
		sub, ver := env.submission(t, "someone-else", models.VersionStatusDraft, `{}`)

		resp := env.request(t, fiber.MethodPatch, metadataURL(sub.ID, ver.ID), `{"title":"Nope"}`, stranger)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Forbidden", body["error"])
	})

	t.Run("unknown version", func(t *testing.T) {
		env := newTestEnv(t)
		editor := env.user(t, models.RoleEditor)
		sub, _ := env.submission(t, "someone-else", models.VersionStatusDraft, `{}`)

		resp := env.request(t, fiber.MethodPatch, metadataURL(sub.ID, "missing"), `{"title":"New"}`, editor)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("unparsable body", func(t *testing.T) {
		env := newTestEnv(t)
		editor := env.user(t, models.RoleEditor)
		sub, ver := env.submission(t, "someone-else", models.VersionStatusDraft, `{}`)

		resp := env.request(t, fiber.MethodPatch, metadataURL(sub.ID, ver.ID), `{broken`, editor)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestPublish(t *testing.T) {
	env := newTestEnv(t)
	editor := env.user(t, models.RoleEditor)
	author := env.user(t, models.RoleAuthor)
	sub, ver := env.submission(t, author.ID, models.VersionStatusDraft, `{}`)

	publishURL := "/api/editor/submissions/" + sub.ID + "/publications/publish"

	t.Run("author role may not publish", func(t *testing.T) {
		resp := env.request(t, fiber.MethodPost, publishURL,
			`{"versionId":"`+ver.ID+`","publishDate":"2026-09-01","publishNow":true}`, author)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("publish date required", func(t *testing.T) {
		resp := env.request(t, fiber.MethodPost, publishURL,
			`{"versionId":"`+ver.ID+`","publishNow":true}`, editor)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid date", func(t *testing.T) {
		resp := env.request(t, fiber.MethodPost, publishURL,
			`{"versionId":"`+ver.ID+`","publishDate":"soon"}`, editor)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("schedule for a date", func(t *testing.T) {
		resp := env.request(t, fiber.MethodPost, publishURL,
			`{"versionId":"`+ver.ID+`","publishDate":"2026-09-01"}`, editor)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		stored, err := pubctl.GetVersion(env.db, sub.ID, ver.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VersionStatusScheduled, stored.Status)
	})

	t.Run("publish now", func(t *testing.T) {
		resp := env.request(t, fiber.MethodPost, publishURL,
			`{"versionId":"`+ver.ID+`","publishDate":"2026-09-01","publishNow":true}`, editor)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Publication published successfully.", body["message"])

		stored, err := pubctl.GetVersion(env.db, sub.ID, ver.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VersionStatusPublished, stored.Status)
	})

	t.Run("unpublish back to draft", func(t *testing.T) {
		resp := env.request(t, fiber.MethodPost,
			"/api/editor/submissions/"+sub.ID+"/publications/unpublish",
			`{"versionId":"`+ver.ID+`"}`, editor)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		stored, err := pubctl.GetVersion(env.db, sub.ID, ver.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VersionStatusDraft, stored.Status)
		assert.Nil(t, stored.PublishedAt)
	})

	t.Run("unknown version", func(t *testing.T) {
		resp := env.request(t, fiber.MethodPost, publishURL,
			`{"versionId":"missing","publishDate":"2026-09-01"}`, editor)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestVersions(t *testing.T) {
	env := newTestEnv(t)
	editor := env.user(t, models.RoleEditor)
	sub, _ := env.submission(t, "u-author", models.VersionStatusPublished, `{"title":"V1"}`)

	versionsURL := "/api/editor/submissions/" + sub.ID + "/publications/versions"

	t.Run("create next version", func(t *testing.T) {
		resp := env.request(t, fiber.MethodPost, versionsURL, `{"description":"fixes"}`, editor)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		version, ok := body["version"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(2), version["Version"])
	})

	t.Run("list oldest first", func(t *testing.T) {
		resp := env.request(t, fiber.MethodGet, versionsURL, "", editor)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		versions, ok := body["versions"].([]any)
		require.True(t, ok)
		assert.Len(t, versions, 2)
	})

	t.Run("requires editor role", func(t *testing.T) {
		reader := env.user(t, models.RoleReader)
		resp := env.request(t, fiber.MethodGet, versionsURL, "", reader)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestActivity(t *testing.T) {
	env := newTestEnv(t)
	editor := env.user(t, models.RoleEditor)
	sub, ver := env.submission(t, "u-author", models.VersionStatusDraft, `{}`)

	// a patch leaves a trail entry
	resp := env.request(t, fiber.MethodPatch, metadataURL(sub.ID, ver.ID), `{"title":"New"}`, editor)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.request(t, fiber.MethodGet, "/api/editor/submissions/"+sub.ID+"/activity", "", editor)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	entries, ok := body["activity"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)

	entry, ok := entries[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "publication", entry["Category"])
}
