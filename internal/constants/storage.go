package constants

// badger keys.
const (
	TokenKey    = "auth-token"
	UserKey     = "auth-user"
	ExpiresKey  = "auth-expires"
	SettingsKey = "settings"
)
