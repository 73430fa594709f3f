// Package publication serves the editorial publication endpoints: metadata
// patching, version creation and listing, publish scheduling and the
// submission activity trail.
package publication

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/apperr"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/auth"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/config"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/activitylog"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/publication"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/web/handler"
)

// Path is the route group of all per-submission publication endpoints.
const Path = handler.APIPath + "/editor/submissions/:submissionId"

// Service is the publication handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the publication handler.
var Handler = Service{}

var _ handler.Service = (*Service)(nil)

// Init initializes the publication handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Patch("/publications/:versionId/metadata", s.PatchMetadata)
		router.Post("/publications/publish", s.Publish)
		router.Post("/publications/unpublish", s.Unpublish)
		router.Get("/publications/versions", s.ListVersions)
		router.Post("/publications/versions", s.CreateVersion)
		router.Get("/activity", s.Activity)
	})

	return nil
}

// requireEditor resolves the caller and checks for an editor role.
func (s *Service) requireEditor(c *fiber.Ctx) (*models.User, error) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return nil, apperr.New(apperr.KindUnauthorized, "Unauthorized")
	}

	if !auth.HasEditorRole(user.Roles) {
		return nil, apperr.New(apperr.KindForbidden, "Forbidden")
	}

	return user, nil
}

// PatchMetadata merges a partial metadata patch into one publication
// version. Editors may patch any version; the submission's author may
// patch unpublished versions only.
func (s *Service) PatchMetadata(c *fiber.Ctx) error {
	submissionID := c.Params("submissionId")
	versionID := c.Params("versionId")
	if submissionID == "" || versionID == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Submission or version id is required")
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		return handler.Fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if !auth.HasEditorRole(user.Roles) {
		sub, err := publication.GetSubmission(s.db, submissionID)
		if err != nil {
			return handler.Fail(c, fiber.StatusForbidden, "Forbidden")
		}

		ver, err := publication.GetVersion(s.db, submissionID, versionID)
		if err != nil {
			if errors.Is(err, publication.ErrVersionNotFound) {
				return handler.Fail(c, fiber.StatusNotFound, "Publication version not found")
			}
			return handler.FailErr(c, err)
		}

		if err := auth.AuthorizeMetadataEdit(user.Roles, user.ID, sub.AuthorID, ver.Status); err != nil {
			switch {
			case errors.Is(err, auth.ErrPublishedLocked):
				return handler.Fail(c, fiber.StatusForbidden, auth.ErrPublishedLocked.Error())
			default:
				return handler.Fail(c, fiber.StatusForbidden, "Forbidden")
			}
		}
	}

	patch := new(publication.MetadataPatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	merged, err := publication.UpdateMetadata(s.db, submissionID, versionID, user.ID, patch)
	if err != nil {
		if errors.Is(err, publication.ErrVersionNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "Publication version not found")
		}
		return handler.FailErr(c, apperr.Wrap(apperr.KindInternal, err, "Failed to update publication metadata"))
	}

	return handler.OK(c, fiber.Map{"metadata": merged})
}

type publishRequest struct {
	VersionID   string `json:"versionId"`
	PublishDate string `json:"publishDate"`
	PublishNow  bool   `json:"publishNow"`
}

// parsePublishDate accepts a date or a full timestamp.
func parsePublishDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}

// Publish publishes a version immediately or schedules it for a date.
func (s *Service) Publish(c *fiber.Ctx) error {
	submissionID := c.Params("submissionId")
	if submissionID == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Submission id is required")
	}

	user, err := s.requireEditor(c)
	if err != nil {
		return handler.FailErr(c, err)
	}

	var req publishRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.PublishDate == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Publish date is required")
	}

	if req.VersionID == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Version id is required")
	}

	publishDate, err := parsePublishDate(req.PublishDate)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid publish date")
	}

	err = publication.Publish(s.db, submissionID, req.VersionID, user.ID, publishDate, req.PublishNow)
	if err != nil {
		if errors.Is(err, publication.ErrVersionNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "Publication version not found")
		}
		return handler.FailErr(c, apperr.Wrap(apperr.KindInternal, err, "Failed to publish version"))
	}

	message := "Publication scheduled successfully."
	if req.PublishNow {
		message = "Publication published successfully."
	}

	return handler.OK(c, fiber.Map{"message": message})
}

type unpublishRequest struct {
	VersionID string `json:"versionId"`
}

// Unpublish moves a published or scheduled version back to draft.
func (s *Service) Unpublish(c *fiber.Ctx) error {
	submissionID := c.Params("submissionId")
	if submissionID == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Submission id is required")
	}

	user, err := s.requireEditor(c)
	if err != nil {
		return handler.FailErr(c, err)
	}

	var req unpublishRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.VersionID == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Version id is required")
	}

	err = publication.Unpublish(s.db, submissionID, req.VersionID, user.ID)
	if err != nil {
		if errors.Is(err, publication.ErrVersionNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "Publication version not found")
		}
		return handler.FailErr(c, apperr.Wrap(apperr.KindInternal, err, "Failed to unpublish version"))
	}

	return handler.OK(c, fiber.Map{"message": "Publication unpublished successfully."})
}

// ListVersions lists all versions of a submission, oldest first.
func (s *Service) ListVersions(c *fiber.Ctx) error {
	submissionID := c.Params("submissionId")
	if submissionID == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Submission id is required")
	}

	if _, err := s.requireEditor(c); err != nil {
		return handler.FailErr(c, err)
	}

	versions, err := publication.ListVersions(s.db, submissionID)
	if err != nil {
		return handler.FailErr(c, apperr.Wrap(apperr.KindInternal, err, "Failed to list versions"))
	}

	return handler.OK(c, fiber.Map{"versions": versions})
}

type createVersionRequest struct {
	Description string `json:"description"`
}

// CreateVersion creates the next draft revision of a submission.
func (s *Service) CreateVersion(c *fiber.Ctx) error {
	submissionID := c.Params("submissionId")
	if submissionID == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Submission id is required")
	}

	user, err := s.requireEditor(c)
	if err != nil {
		return handler.FailErr(c, err)
	}

	var req createVersionRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ver, err := publication.CreateVersion(s.db, submissionID, user.ID, req.Description)
	if err != nil {
		if errors.Is(err, publication.ErrSubmissionNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "Submission not found")
		}
		return handler.FailErr(c, apperr.Wrap(apperr.KindInternal, err, "Failed to create version"))
	}

	return handler.OK(c, fiber.Map{"version": ver})
}

// Activity lists the submission's activity trail, newest first.
func (s *Service) Activity(c *fiber.Ctx) error {
	submissionID := c.Params("submissionId")
	if submissionID == "" {
		return handler.Fail(c, fiber.StatusBadRequest, "Submission id is required")
	}

	if _, err := s.requireEditor(c); err != nil {
		return handler.FailErr(c, err)
	}

	entries, err := activitylog.BySubmission(s.db, submissionID)
	if err != nil {
		return handler.FailErr(c, apperr.Wrap(apperr.KindInternal, err, "Failed to list activity"))
	}

	return handler.OK(c, fiber.Map{"activity": entries})
}
