package settings

import (
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/setting"
)

// websiteGroup covers appearance, announcement, privacy and date/time
// settings plus the localized journal texts shown on the public site.
var websiteGroup = Group{
	Name: "website",
	Fields: []Field{
		{Name: "activeTheme", Type: setting.TypeString, Default: "default"},
		{Name: "pageFooter", Type: setting.TypeString},
		{Name: "customCss", Type: setting.TypeString},
		{Name: "enableAnnouncements", Type: setting.TypeBool},
		{Name: "itemsPerPage", Type: setting.TypeInt, Default: "25"},
		{Name: "timeZone", Type: setting.TypeString, Default: "UTC"},
		{Name: "dateFormat", Type: setting.TypeString, Default: "Y-m-d"},
		{Name: "supportedLocales", Type: setting.TypeObject, Default: `["en_US"]`},
		{Name: "privacyStatement", Type: setting.TypeString, Localized: true},
		{Name: "name", Type: setting.TypeString, Localized: true},
		{Name: "description", Type: setting.TypeString, Localized: true},
		{Name: "about", Type: setting.TypeString, Localized: true},
	},
}
