package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Ledger errors
var (
	ErrShipmentExceedsBalance    = errors.New("the shipment weight exceeds the remaining balance")
	ErrShipmentWeightNotPositive = errors.New("the shipment weight must be positive")
)

// Container errors
var (
	ErrContainerNumberNotUnique = errors.New("a container with this number is already registered")
	ErrContainerAlreadyUnloaded = errors.New("the container has already been unloaded")
	ErrContainerAlreadyReleased = errors.New("the container has already been released for exit")
)
