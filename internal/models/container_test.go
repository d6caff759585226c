package models_test

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cargoyard/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestContainerTrimWhitespace() {
	number := "  MSKU1234567  "
	carrier := " Maersk \t"

	container := suite.createTestContainer(models.Container{
		Number:  number,
		Type:    "40HC",
		Carrier: carrier,
	})

	assert.Equal(suite.T(), strings.TrimSpace(number), container.Number)
	assert.Equal(suite.T(), strings.TrimSpace(carrier), container.Carrier)
}

func (suite *TestSuiteStandard) TestCreateContainer() {
	container := suite.createTestContainer(models.Container{
		Number: "TGHU7654321",
	})

	assert.Equal(suite.T(), models.StatusGate, container.Status)
	assert.Equal(suite.T(), string(models.StatusGate), container.Location)

	events, err := container.History(models.DB)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), events, 1) {
		assert.Equal(suite.T(), models.MovementGateArrival, events[0].Kind)
		assert.Equal(suite.T(), "Container TGHU7654321 arrived at the gate", events[0].Note)
		assert.True(suite.T(), events[0].Timestamp.Equal(container.UpdatedAt), "the arrival event and the container must share a timestamp")
	}
}

func (suite *TestSuiteStandard) TestCreateContainerCustomNote() {
	container := models.Container{Number: "APZU3001112"}
	err := models.CreateContainer(models.DB, &container, "Arrived on truck 17")
	assert.Nil(suite.T(), err)

	events, err := container.History(models.DB)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), events, 1) {
		assert.Equal(suite.T(), "Arrived on truck 17", events[0].Note)
	}
}

func (suite *TestSuiteStandard) TestCreateContainerDuplicateNumber() {
	_ = suite.createTestContainer(models.Container{
		Number: "MSKU0000001",
	})

	err := models.CreateContainer(models.DB, &models.Container{
		Number: "MSKU0000001",
	}, "")
	assert.ErrorIs(suite.T(), err, models.ErrContainerNumberNotUnique)
}

func (suite *TestSuiteStandard) TestContainerUnload() {
	container := suite.createTestContainer(models.Container{})

	err := container.Unload(models.DB, "")
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), models.StatusEmptyYard, container.Status)
	assert.Equal(suite.T(), string(models.StatusEmptyYard), container.Location)

	events, err := container.History(models.DB)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), events, 2) {
		assert.Equal(suite.T(), models.MovementUnload, events[0].Kind)
		assert.True(suite.T(), events[0].Timestamp.Equal(container.UpdatedAt), "the unload event and the container must share a timestamp")
	}
}

func (suite *TestSuiteStandard) TestContainerUnloadTwice() {
	container := suite.createTestContainer(models.Container{})

	err := container.Unload(models.DB, "")
	assert.Nil(suite.T(), err)

	err = container.Unload(models.DB, "")
	assert.ErrorIs(suite.T(), err, models.ErrContainerAlreadyUnloaded)

	// The failed transition must not append an event
	events, err := container.History(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), events, 2)
}

func (suite *TestSuiteStandard) TestContainerRelease() {
	container := suite.createTestContainer(models.Container{})

	err := container.Unload(models.DB, "")
	assert.Nil(suite.T(), err)

	err = container.Release(models.DB, "")
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), models.StatusReleased, container.Status)

	// Release does not move the container, it is picked up where it is
	assert.Equal(suite.T(), string(models.StatusEmptyYard), container.Location)

	events, err := container.History(models.DB)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), events, 3) {
		assert.Equal(suite.T(), models.MovementRelease, events[0].Kind)
	}
}

// A container can be released straight from the gate, e.g. when it was
// refused at arrival.
func (suite *TestSuiteStandard) TestContainerReleaseFromGate() {
	container := suite.createTestContainer(models.Container{})

	err := container.Release(models.DB, "Refused, wrong yard")
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), models.StatusReleased, container.Status)
	assert.Equal(suite.T(), string(models.StatusGate), container.Location)
}

func (suite *TestSuiteStandard) TestContainerReleasedIsFinal() {
	container := suite.createTestContainer(models.Container{})

	err := container.Release(models.DB, "")
	assert.Nil(suite.T(), err)

	err = container.Release(models.DB, "")
	assert.ErrorIs(suite.T(), err, models.ErrContainerAlreadyReleased)

	err = container.Unload(models.DB, "")
	assert.ErrorIs(suite.T(), err, models.ErrContainerAlreadyReleased)

	events, err := container.History(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), events, 2)
}

func (suite *TestSuiteStandard) TestContainerReleaseConcurrent() {
	container := suite.createTestContainer(models.Container{})

	// The status is re-read inside the transaction, so no matter how the
	// goroutines interleave only one release may succeed
	errs := make([]error, 5)

	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			c := container
			errs[i] = c.Release(models.DB, "")
		}(i)
	}
	wg.Wait()

	var released int
	for _, err := range errs {
		if err == nil {
			released++
		} else {
			assert.ErrorIs(suite.T(), err, models.ErrContainerAlreadyReleased)
		}
	}
	assert.Equal(suite.T(), 1, released, "exactly one release may succeed")

	// The arrival plus a single release event
	events, err := container.History(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), events, 2)
}

func (suite *TestSuiteStandard) TestContainerHistoryOrder() {
	container := suite.createTestContainer(models.Container{})

	err := container.Unload(models.DB, "")
	assert.Nil(suite.T(), err)

	err = container.Release(models.DB, "")
	assert.Nil(suite.T(), err)

	events, err := container.History(models.DB)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), events, 3) {
		assert.Equal(suite.T(), models.MovementRelease, events[0].Kind)
		assert.Equal(suite.T(), models.MovementUnload, events[1].Kind)
		assert.Equal(suite.T(), models.MovementGateArrival, events[2].Kind)
	}
}

func (suite *TestSuiteStandard) TestContainerWithLastMovement() {
	container := suite.createTestContainer(models.Container{})

	err := container.Unload(models.DB, "")
	assert.Nil(suite.T(), err)

	err = container.WithLastMovement(models.DB)
	assert.Nil(suite.T(), err)

	if assert.NotNil(suite.T(), container.LastMovement) {
		assert.True(suite.T(), container.LastMovement.Equal(container.UpdatedAt))
	}
}

// A container created outside of CreateContainer has no movement events.
func (suite *TestSuiteStandard) TestContainerWithLastMovementNoEvents() {
	container := models.Container{Number: "NONE0000001", Status: models.StatusFullYard}
	err := models.DB.Create(&container).Error
	assert.Nil(suite.T(), err)

	err = container.WithLastMovement(models.DB)
	assert.Nil(suite.T(), err)
	assert.Nil(suite.T(), container.LastMovement)
}

func (suite *TestSuiteStandard) TestLoadContainers() {
	for i := 0; i < 3; i++ {
		_ = suite.createTestContainer(models.Container{
			Number:  fmt.Sprintf("MSKU100000%d", i),
			Carrier: "Maersk",
		})
	}

	released := suite.createTestContainer(models.Container{
		Number:  "HLCU2000001",
		Carrier: "Hapag-Lloyd",
	})
	err := released.Release(models.DB, "")
	assert.Nil(suite.T(), err)

	containers, err := models.LoadContainers(models.DB)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), containers, 4) {
		for _, container := range containers {
			assert.NotNil(suite.T(), container.LastMovement, "every registered container has at least its arrival event")
		}
	}

	// Caller conditions on the containers table are honored
	containers, err = models.LoadContainers(models.DB.Where(&models.Container{Status: models.StatusReleased}))
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), containers, 1) {
		assert.Equal(suite.T(), released.ID, containers[0].ID)
	}
}
