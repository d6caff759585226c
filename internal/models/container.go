package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ContainerStatus is the lifecycle state of a container in the yard.
// swagger:enum ContainerStatus
type ContainerStatus string

const (
	StatusGate      ContainerStatus = "gate"
	StatusFullYard  ContainerStatus = "full-yard"
	StatusUnloading ContainerStatus = "unloading"
	StatusEmptyYard ContainerStatus = "unloaded-to-empty-yard"
	StatusReleased  ContainerStatus = "released-for-exit"
)

// Statuses lists all container statuses. StatusFullYard and StatusUnloading
// have no transition producing them yet, they exist for data imported from
// other systems and are still counted in the statistics.
var Statuses = []ContainerStatus{StatusGate, StatusFullYard, StatusUnloading, StatusEmptyYard, StatusReleased}

// Container represents a shipping container in the yard. Its status and
// location only change through RegisterContainer, Unload and Release, each
// of which appends exactly one MovementEvent with the same timestamp.
type Container struct {
	DefaultModel
	Number   string `gorm:"uniqueIndex"`
	Type     string
	Carrier  string
	Status   ContainerStatus
	Location string

	// LastMovement is the timestamp of the most recent movement event
	LastMovement *time.Time `gorm:"-"`
}

func (c Container) Self() string {
	return "Container"
}

// BeforeSave trims whitespace from the string fields.
func (c *Container) BeforeSave(_ *gorm.DB) error {
	c.Number = strings.TrimSpace(c.Number)
	c.Type = strings.TrimSpace(c.Type)
	c.Carrier = strings.TrimSpace(c.Carrier)

	return nil
}

// next returns the error blocking a transition to the target status,
// or nil if the transition is allowed.
func (s ContainerStatus) next(target ContainerStatus) error {
	// A released container left the yard, nothing can happen to it anymore
	if s == StatusReleased {
		return ErrContainerAlreadyReleased
	}

	if s == StatusEmptyYard && target == StatusEmptyYard {
		return ErrContainerAlreadyUnloaded
	}

	return nil
}

// CreateContainer registers a container at the gate and appends its
// arrival event. Both writes run in one transaction.
func CreateContainer(db *gorm.DB, container *Container, note string) error {
	now := time.Now().In(time.UTC)

	container.Status = StatusGate
	container.Location = string(StatusGate)
	container.CreatedAt = now
	container.UpdatedAt = now

	if note == "" {
		note = fmt.Sprintf("Container %s arrived at the gate", strings.TrimSpace(container.Number))
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Check the number first for a clean error. The unique index
		// still backs this up when two registrations race.
		var count int64
		err := tx.Model(&Container{}).Where("number = ?", strings.TrimSpace(container.Number)).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrContainerNumberNotUnique
		}

		err = tx.Create(container).Error
		if err != nil {
			return err
		}

		return tx.Create(&MovementEvent{
			ContainerID: container.ID,
			Kind:        MovementGateArrival,
			Timestamp:   now,
			Note:        note,
		}).Error
	})
}

// Unload moves the container to the empty yard.
func (c *Container) Unload(db *gorm.DB, note string) error {
	if note == "" {
		note = fmt.Sprintf("Container %s unloaded and moved to the empty yard", c.Number)
	}

	location := string(StatusEmptyYard)
	return c.transition(db, StatusEmptyYard, &location, MovementUnload, note)
}

// Release clears the container to leave the yard. The location does not
// change, the container is picked up from wherever it is.
func (c *Container) Release(db *gorm.DB, note string) error {
	if note == "" {
		note = fmt.Sprintf("Container %s released for exit", c.Number)
	}

	return c.transition(db, StatusReleased, nil, MovementRelease, note)
}

// transition performs a state change. The status is re-read and checked
// inside the transaction so that two concurrent transitions from the same
// source state cannot both succeed.
func (c *Container) transition(db *gorm.DB, target ContainerStatus, location *string, kind MovementKind, note string) error {
	now := time.Now().In(time.UTC)

	err := db.Transaction(func(tx *gorm.DB) error {
		var current Container
		err := tx.First(&current, "id = ?", c.ID).Error
		if err != nil {
			return err
		}

		err = current.Status.next(target)
		if err != nil {
			return fmt.Errorf("%w: container %s", err, current.Number)
		}

		columns := map[string]interface{}{
			"status":     target,
			"updated_at": now,
		}
		if location != nil {
			columns["location"] = *location
		}

		// UpdateColumns keeps updated_at identical to the event timestamp
		err = tx.Model(&Container{}).Where("id = ?", c.ID).UpdateColumns(columns).Error
		if err != nil {
			return err
		}

		return tx.Create(&MovementEvent{
			ContainerID: c.ID,
			Kind:        kind,
			Timestamp:   now,
			Note:        note,
		}).Error
	})
	if err != nil {
		return err
	}

	c.Status = target
	if location != nil {
		c.Location = *location
	}
	c.UpdatedAt = now

	return nil
}

// WithLastMovement sets the timestamp of the most recent movement event.
func (c *Container) WithLastMovement(db *gorm.DB) error {
	var events []MovementEvent

	err := db.
		Where(&MovementEvent{ContainerID: c.ID}).
		Order("timestamp DESC").
		Limit(1).
		Find(&events).Error
	if err != nil {
		return err
	}

	if len(events) > 0 {
		c.LastMovement = &events[0].Timestamp
	}

	return nil
}

// History returns all movement events for the container, newest first.
func (c Container) History(db *gorm.DB) ([]MovementEvent, error) {
	var events []MovementEvent

	err := db.
		Where(&MovementEvent{ContainerID: c.ID}).
		Order("timestamp DESC, created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}

// LoadContainers returns all containers matching the query, newest
// registration first, each annotated with its last movement.
func LoadContainers(db *gorm.DB) ([]Container, error) {
	var containers []Container

	err := db.Order("created_at DESC").Find(&containers).Error
	if err != nil {
		return nil, err
	}

	// The annotation always runs on the unscoped DB: db may carry
	// caller conditions that only apply to the containers table
	for i := range containers {
		err = containers[i].WithLastMovement(DB)
		if err != nil {
			return nil, err
		}
	}

	return containers, nil
}
