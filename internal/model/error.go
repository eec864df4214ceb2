package model

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrUnknownFlow    = errors.New("unknown sync flow")
	ErrUpstreamStatus = errors.New("upstream returned non-2xx status")
	ErrUnexpectedHTML = errors.New("upstream returned html where json was expected")
	ErrNotPDF         = errors.New("upstream response is not a pdf")
	ErrEmptyBody      = errors.New("upstream returned an empty body")
	ErrPDFParse       = errors.New("pdf parse failed")
	ErrPersist        = errors.New("persist failed")
	ErrSyncInProgress = errors.New("sync already in progress")
)
