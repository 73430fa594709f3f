package auth

import (
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

// EditorRoles is the fixed set of role paths with full metadata-edit
// authority, independent of authorship.
var EditorRoles = []string{
	models.RoleAdmin,
	models.RoleManager,
	models.RoleEditor,
	models.RoleSectionEditor,
}

// ManagerRoles is the set of role paths allowed to change journal settings.
var ManagerRoles = []string{
	models.RoleAdmin,
	models.RoleManager,
}

// HasAnyRole reports whether one of the user's roles matches a wanted path.
func HasAnyRole(roles []models.UserRole, wanted []string) bool {
	for _, r := range roles {
		for _, w := range wanted {
			if r.RolePath == w {
				return true
			}
		}
	}

	return false
}

// HasEditorRole reports whether the roles include one of the editor roles.
func HasEditorRole(roles []models.UserRole) bool {
	return HasAnyRole(roles, EditorRoles)
}

// AuthorizeMetadataEdit decides whether a caller may edit a version's
// metadata. Editor roles may edit any version. Otherwise the caller must
// be the submission's author, and authors are locked out of published
// versions (ErrPublishedLocked, distinct from the plain ErrForbidden).
func AuthorizeMetadataEdit(roles []models.UserRole, callerID, authorID, versionStatus string) error {
	if HasEditorRole(roles) {
		return nil
	}

	if callerID == "" || callerID != authorID {
		return ErrForbidden
	}

	if versionStatus == models.VersionStatusPublished {
		return ErrPublishedLocked
	}

	return nil
}
