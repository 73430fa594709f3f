package settings

import (
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/setting"
)

// workflowGroup covers submission intake, the review setup and the
// editorial email defaults. Guidance texts and the signature live at the
// primary locale; flags and numbers are locale-independent.
var workflowGroup = Group{
	Name: "workflow",
	Fields: []Field{
		{Name: "disableSubmissions", Type: setting.TypeBool},
		{Name: "authorGuidelines", Type: setting.TypeString, Localized: true},
		{Name: "review_defaultReviewMode", Type: setting.TypeString, Default: "double"},
		{Name: "review_restrictReviewerFileAccess", Type: setting.TypeBool},
		{Name: "review_reviewerAccessKeysEnabled", Type: setting.TypeBool},
		{Name: "review_numWeeksPerResponse", Type: setting.TypeInt, Default: "4"},
		{Name: "review_numWeeksPerReview", Type: setting.TypeInt, Default: "4"},
		{Name: "review_numDaysBeforeInviteReminder", Type: setting.TypeInt, Default: "3"},
		{Name: "review_numDaysBeforeSubmitReminder", Type: setting.TypeInt, Default: "3"},
		{Name: "reviewerGuidance_reviewGuidelines", Type: setting.TypeString, Localized: true},
		{Name: "reviewerGuidance_competingInterests", Type: setting.TypeString, Localized: true},
		{Name: "reviewerGuidance_showEnsuringLink", Type: setting.TypeBool},
		{Name: "emailSetup_emailSignature", Type: setting.TypeString, Localized: true},
		{Name: "emailSetup_envelopeSender", Type: setting.TypeString, Validate: "omitempty,email"},
	},
}
