// Package publication provides operations on submissions and their
// publication versions: metadata merge updates, publish scheduling and
// version creation and listing. Every change appends an activity log entry.
package publication

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/activitylog"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

// CategoryPublication is the activity log category of publication changes.
const CategoryPublication = "publication"

var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrVersionNotFound is returned when a version does not exist under the given submission.
	ErrVersionNotFound = errors.New("publication version not found")
	// ErrIDEmpty is returned when a required identifier is empty.
	ErrIDEmpty = errors.New("submission and version id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetSubmission retrieves a submission by its ID.
func GetSubmission(db *gorm.DB, submissionID string) (*models.Submission, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if submissionID == "" {
		return nil, ErrIDEmpty
	}

	var sub models.Submission
	result := db.Where("id = ?", submissionID).First(&sub)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, result.Error
	}

	return &sub, nil
}

// GetVersion retrieves a version scoped to its submission.
func GetVersion(db *gorm.DB, submissionID, versionID string) (*models.SubmissionVersion, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if submissionID == "" || versionID == "" {
		return nil, ErrIDEmpty
	}

	var ver models.SubmissionVersion
	result := db.
		Where("id = ? AND submission_id = ?", versionID, submissionID).
		First(&ver)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, result.Error
	}

	return &ver, nil
}

// ListVersions lists all versions of a submission, oldest first.
func ListVersions(db *gorm.DB, submissionID string) ([]models.SubmissionVersion, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if submissionID == "" {
		return nil, ErrIDEmpty
	}

	var versions []models.SubmissionVersion
	result := db.
		Where("submission_id = ?", submissionID).
		Order("version ASC").
		Find(&versions)
	if result.Error != nil {
		return nil, result.Error
	}

	return versions, nil
}

// CreateVersion creates the next revision of a submission as a draft,
// carrying over the metadata of the latest existing version.
func CreateVersion(db *gorm.DB, submissionID, actorID, notes string) (*models.SubmissionVersion, error) {
	sub, err := GetSubmission(db, submissionID)
	if err != nil {
		return nil, err
	}

	versions, err := ListVersions(db, sub.ID)
	if err != nil {
		return nil, err
	}

	next := 1
	var metadata datatypes.JSON
	if len(versions) > 0 {
		latest := versions[len(versions)-1]
		next = latest.Version + 1
		metadata = latest.Metadata
	}

	ver := models.SubmissionVersion{
		SubmissionID: sub.ID,
		Version:      next,
		Status:       models.VersionStatusDraft,
		Metadata:     metadata,
		Notes:        notes,
	}
	if result := db.Create(&ver); result.Error != nil {
		return nil, result.Error
	}

	err = activitylog.Append(db, submissionID, actorID, CategoryPublication,
		fmt.Sprintf("Created new version %d.", next),
		map[string]any{
			"versionId":   ver.ID,
			"version":     next,
			"description": notes,
		})
	if err != nil {
		return nil, err
	}

	return &ver, nil
}

// UpdateMetadata merges the patch into the version's metadata blob and
// persists the result. Fields absent from the patch stay untouched; the
// identifiers sub-object is replaced as a whole. A non-empty patched title
// is synced onto the submission record. Concurrent edits apply
// last-write-wins; there is no optimistic concurrency token.
// Returns the merged metadata.
func UpdateMetadata(db *gorm.DB, submissionID, versionID, actorID string, patch *MetadataPatch) (map[string]any, error) {
	ver, err := GetVersion(db, submissionID, versionID)
	if err != nil {
		return nil, err
	}

	merged, err := merge(ver.Metadata, patch)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}

	result := db.Model(&models.SubmissionVersion{}).
		Where("id = ?", ver.ID).
		Update("metadata", datatypes.JSON(raw))
	if result.Error != nil {
		return nil, result.Error
	}

	if patch.Title != nil && *patch.Title != "" {
		result = db.Model(&models.Submission{}).
			Where("id = ?", submissionID).
			Update("title", *patch.Title)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	err = activitylog.Append(db, submissionID, actorID, CategoryPublication,
		"Publication metadata updated.",
		map[string]any{
			"versionId": versionID,
			"fields":    patch.Fields(),
		})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// Publish marks the version as published (publishNow) or scheduled for the
// given date, and records the action in the activity log.
func Publish(db *gorm.DB, submissionID, versionID, actorID string, publishDate time.Time, publishNow bool) error {
	ver, err := GetVersion(db, submissionID, versionID)
	if err != nil {
		return err
	}

	status := models.VersionStatusScheduled
	message := fmt.Sprintf("Publication scheduled for %s.", publishDate.Format("2006-01-02"))
	if publishNow {
		status = models.VersionStatusPublished
		message = "Publication published."
	}

	result := db.Model(&models.SubmissionVersion{}).
		Where("id = ?", ver.ID).
		Updates(map[string]any{
			"status":       status,
			"published_at": publishDate,
		})
	if result.Error != nil {
		return result.Error
	}

	return activitylog.Append(db, submissionID, actorID, CategoryPublication, message,
		map[string]any{
			"versionId":   versionID,
			"publishDate": publishDate.Format(time.RFC3339),
			"publishNow":  publishNow,
		})
}

// Unpublish moves the version back to draft and records the action.
func Unpublish(db *gorm.DB, submissionID, versionID, actorID string) error {
	ver, err := GetVersion(db, submissionID, versionID)
	if err != nil {
		return err
	}

	result := db.Model(&models.SubmissionVersion{}).
		Where("id = ?", ver.ID).
		Updates(map[string]any{
			"status":       models.VersionStatusDraft,
			"published_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}

	return activitylog.Append(db, submissionID, actorID, CategoryPublication,
		"Publication unpublished.",
		map[string]any{"versionId": versionID})
}
