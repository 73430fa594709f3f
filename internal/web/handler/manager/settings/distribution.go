package settings

import (
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/setting"
)

// distributionGroup covers licensing, search indexing and payment
// configuration, all stored as JSON objects.
var distributionGroup = Group{
	Name: "distribution",
	Fields: []Field{
		{
			Name:    "license",
			Type:    setting.TypeObject,
			Default: `{"copyrightHolderType":"author","copyrightYearBasis":"issue","licenseUrl":""}`,
		},
		{
			Name:    "searchIndexing",
			Type:    setting.TypeObject,
			Default: `{"description":"","customTags":""}`,
		},
		{
			Name:    "payments",
			Type:    setting.TypeObject,
			Default: `{"paymentsEnabled":false,"currency":"USD"}`,
		},
	},
}
