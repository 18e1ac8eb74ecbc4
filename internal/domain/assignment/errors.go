package assignment

import "errors"

var (
	ErrAssignmentNotFound  = errors.New("duty assignment not found")
	ErrAssignmentSlotTaken = errors.New("an assignment already exists for this date and shift")
	ErrWeekdayDayShift     = errors.New("weekday assignments only admit the night shift")
	ErrInvalidRequestData  = errors.New("invalid request data")
)
