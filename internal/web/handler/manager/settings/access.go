package settings

import (
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/controller/setting"
)

// accessGroup covers registration and session policy.
var accessGroup = Group{
	Name: "access",
	Fields: []Field{
		{Name: "allowRegistrations", Type: setting.TypeBool},
		{Name: "requireReviewerInterests", Type: setting.TypeBool},
		{Name: "allowRememberMe", Type: setting.TypeBool},
		{Name: "sessionLifetime", Type: setting.TypeInt, Default: "30"},
		{Name: "forceSSL", Type: setting.TypeBool},
	},
}
