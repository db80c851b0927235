package domain

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotLoggedIn          = errors.New("not logged in")
)
