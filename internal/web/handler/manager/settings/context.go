package settings

import (
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/setting"
)

// contextGroup covers the journal masthead (localized) and the contact
// and support details (locale-independent).
var contextGroup = Group{
	Name: "context",
	Fields: []Field{
		{Name: "name", Type: setting.TypeString, Localized: true},
		{Name: "acronym", Type: setting.TypeString, Localized: true},
		{Name: "abbreviation", Type: setting.TypeString, Localized: true},
		{Name: "description", Type: setting.TypeString, Localized: true},
		{Name: "editorialTeam", Type: setting.TypeString, Localized: true},
		{Name: "about", Type: setting.TypeString, Localized: true},
		{Name: "publisherInstitution", Type: setting.TypeString, Localized: true},
		{Name: "publisherUrl", Type: setting.TypeString, Localized: true},
		{Name: "onlineIssn", Type: setting.TypeString, Localized: true},
		{Name: "printIssn", Type: setting.TypeString, Localized: true},
		{Name: "contactName", Type: setting.TypeString},
		{Name: "contactEmail", Type: setting.TypeString, Validate: "omitempty,email"},
		{Name: "contactPhone", Type: setting.TypeString},
		{Name: "contactAffiliation", Type: setting.TypeString},
		{Name: "mailingAddress", Type: setting.TypeString},
		{Name: "supportName", Type: setting.TypeString},
		{Name: "supportEmail", Type: setting.TypeString, Validate: "omitempty,email"},
		{Name: "supportPhone", Type: setting.TypeString},
	},
}
