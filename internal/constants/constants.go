package constants

import (
	"time"
)

const (
	DefaultAPIBaseURL   = "http://156.255.1.85:8080/api/v1"
	DefaultAPITimeout   = 10 * time.Second
	DefaultMapDebounce  = 500 * time.Millisecond
	DefaultListenAddr   = ":8090"
	DefaultWatchPeriod  = time.Minute
	DefaultLogLevel     = "info"
	DefaultUsersPerPage = 10
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
)

const (
	SessionCheckInterval = time.Minute
	SessionExpiringSoon  = 5 * time.Minute
)
