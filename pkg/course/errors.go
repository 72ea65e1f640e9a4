package course

import "errors"

var (
	ErrNoCourse     = errors.New("course: name is required")
	ErrNoStartDate  = errors.New("course: start date is required")
	ErrNoCurriculum = errors.New("course: curriculum is required")
	ErrLedger       = errors.New("course: sent-marker ledger failed")
)
