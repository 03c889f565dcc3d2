package services

import "errors"

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title exceeds 100 characters")
	ErrDuplicateTitle  = errors.New("area title already exists")
	ErrContentRequired = errors.New("content is required")
	ErrDueDateRequired = errors.New("due date is required")
	ErrAreaNotFound    = errors.New("area not found")
)

// EditKind names the two mutually exclusive edit submissions: an archive
// request flips only the archive flag and discards every other field in
// the same submission, a content edit applies the editable fields and
// never touches the archive flag.
type EditKind int

const (
	ContentEdit EditKind = iota
	ArchiveEdit
)
