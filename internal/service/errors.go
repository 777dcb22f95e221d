package service

import "errors"

// Domain errors surfaced to handlers.
var (
	ErrAdminNotFound        = errors.New("admin not found")
	ErrAdminExists          = errors.New("admin already exists")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
	ErrInvalidName          = errors.New("name must be 2-100 characters")
	ErrWeakPassword         = errors.New("password must be at least 6 characters")

	ErrBlankField       = errors.New("required field is blank")
	ErrInvalidImagePath = errors.New("image path is not an uploaded file")

	ErrProjectExists    = errors.New("project already exists")
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidCategory  = errors.New("unknown project category")
	ErrClientExists     = errors.New("client already exists")
	ErrContactExists    = errors.New("contact already exists")
	ErrSubscriberExists = errors.New("subscriber already exists")
)
