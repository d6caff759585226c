package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/cargoyard/backend/internal/controllers/v1"
	"github.com/cargoyard/backend/internal/models"
	"github.com/cargoyard/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsContainerList() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/containers", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsContainerDetail() {
	container := suite.createTestContainer(models.Container{})

	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/containers/"+container.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/containers/5b95e1a9-522d-4a36-9074-32f7c34a0c07", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateContainer() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/containers", map[string]any{
		"number":  "MSCU1234567",
		"type":    "40HC",
		"carrier": "MSC",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ContainerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Nil(suite.T(), response.Error)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), "MSCU1234567", response.Data.Number)
	assert.Equal(suite.T(), models.StatusGate, response.Data.Status)
	assert.Equal(suite.T(), "gate", response.Data.Location)
	assert.Contains(suite.T(), response.Data.Links.History, "/history")
}

func (suite *TestSuiteStandard) TestCreateContainerDuplicate() {
	_ = suite.createTestContainer(models.Container{Number: "MSCU1234567"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/containers", map[string]any{
		"number":  "MSCU1234567",
		"type":    "40HC",
		"carrier": "MSC",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ContainerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "a container with this number is already registered", *response.Error)
}

func (suite *TestSuiteStandard) TestCreateContainerInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/containers", map[string]any{
		"type": "40HC",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ContainerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "Number is required")
	assert.Contains(suite.T(), *response.Error, "Carrier is required")
}

func (suite *TestSuiteStandard) TestGetContainersFilter() {
	_ = suite.createTestContainer(models.Container{Number: "MSKU1000001", Carrier: "Maersk"})
	_ = suite.createTestContainer(models.Container{Number: "MSKU1000002", Carrier: "Maersk"})
	hapag := suite.createTestContainer(models.Container{Number: "HLCU2000001", Carrier: "Hapag-Lloyd"})

	err := hapag.Unload(models.DB, "")
	require.Nil(suite.T(), err)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"By carrier", "carrier=Maersk", 2},
		{"By status", "status=unloaded-to-empty-yard", 1},
		{"By number glob", "number=MSKU*", 2},
		{"By exact number", "number=HLCU2000001", 1},
		{"No match", "carrier=ONE", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/containers?"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ContainerListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetContainer() {
	container := suite.createTestContainer(models.Container{Number: "MSCU7654321"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/containers/"+container.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ContainerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "MSCU7654321", response.Data.Number)
	assert.NotNil(suite.T(), response.Data.LastMovement, "the arrival event must be reflected in lastMovement")
}

func (suite *TestSuiteStandard) TestGetContainerNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/containers/5b95e1a9-522d-4a36-9074-32f7c34a0c07", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response v1.ContainerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "there is no container matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestContainerLifecycle() {
	container := suite.createTestContainer(models.Container{Number: "TGHU0000001"})
	base := "http://example.com/v1/containers/" + container.ID.String()

	// Unload with a note
	recorder := test.Request(suite.T(), http.MethodPost, base+"/unload", map[string]any{
		"note": "cargo moved to warehouse 3",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ContainerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), models.StatusEmptyYard, response.Data.Status)
	assert.Equal(suite.T(), "unloaded-to-empty-yard", response.Data.Location)

	// Unloading again fails
	recorder = test.Request(suite.T(), http.MethodPost, base+"/unload", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// Release without a body
	recorder = test.Request(suite.T(), http.MethodPost, base+"/release", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), models.StatusReleased, response.Data.Status)

	// Nothing can happen to a released container
	recorder = test.Request(suite.T(), http.MethodPost, base+"/release", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var errResponse v1.ContainerResponse
	test.DecodeResponse(suite.T(), &recorder, &errResponse)
	require.NotNil(suite.T(), errResponse.Error)
	assert.Contains(suite.T(), *errResponse.Error, "already been released")

	// The history has all three events, newest first
	recorder = test.Request(suite.T(), http.MethodGet, base+"/history", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var history v1.MovementEventListResponse
	test.DecodeResponse(suite.T(), &recorder, &history)

	require.Len(suite.T(), history.Data, 3)
	assert.Equal(suite.T(), models.MovementRelease, history.Data[0].Kind)
	assert.Equal(suite.T(), models.MovementUnload, history.Data[1].Kind)
	assert.Equal(suite.T(), "cargo moved to warehouse 3", history.Data[1].Note)
	assert.Equal(suite.T(), models.MovementGateArrival, history.Data[2].Kind)
}

func (suite *TestSuiteStandard) TestContainerHistoryNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/containers/5b95e1a9-522d-4a36-9074-32f7c34a0c07/history", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUnloadContainerNotFound() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/containers/5b95e1a9-522d-4a36-9074-32f7c34a0c07/unload", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
