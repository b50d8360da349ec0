package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler layer.
var (
	ErrInvalid      = errors.New("invalid request")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrNoFile       = errors.New("no file provided")
	ErrInvalidType  = errors.New("invalid file type")
	ErrFileTooLarge = errors.New("file too large")
	ErrInvalidFile  = errors.New("could not parse file")
	ErrEmptyData    = errors.New("no data found in file")
	ErrNoMessages   = errors.New("no messages provided")
	ErrUpstream     = errors.New("upstream failure")
)
