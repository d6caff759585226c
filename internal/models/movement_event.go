package models

import (
	"time"

	"github.com/google/uuid"
)

// MovementKind is the kind of a container movement.
// swagger:enum MovementKind
type MovementKind string

const (
	MovementGateArrival MovementKind = "arrival-at-gate"
	MovementUnload      MovementKind = "unload-to-empty-yard"
	MovementRelease     MovementKind = "release-for-exit"
)

// MovementEvent is one entry in the append-only movement history of a
// container. Events are never updated or deleted.
type MovementEvent struct {
	DefaultModel
	ContainerID uuid.UUID `gorm:"index"`
	Container   Container
	Kind        MovementKind
	Timestamp   time.Time
	Note        string
}

func (e MovementEvent) Self() string {
	return "Movement Event"
}
