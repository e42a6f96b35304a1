package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrOutOfRange         = errors.New("position out of range")
	ErrEmptyCollection    = errors.New("collection is empty")
	ErrDuplicateName      = errors.New("a task with this name already exists")
	ErrMemberNotFound     = errors.New("frequency list not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrUnknownFrequency   = errors.New("unknown frequency")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrMissingWakeDate    = errors.New("asleep tasks need a wake date")
	ErrWakeDateNotFuture  = errors.New("wake date must be after today")
	ErrNotInitialized     = errors.New("todo-iq not initialized (run 'todoiq init' first)")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrInvalidConfigValue = errors.New("invalid config value")
	ErrNotOnAgenda        = errors.New("task is not on the agenda")
	ErrInvalidImport      = errors.New("invalid import document")
)
