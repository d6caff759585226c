package v1

import (
	"net/http"

	"github.com/cargoyard/backend/internal/httputil"
	"github.com/cargoyard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type LedgerStatisticsResponse struct {
	Data  *models.LedgerStatistics `json:"data"`                                                          // The aggregate ledger numbers
	Error *string                  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type ContainerStatisticsResponse struct {
	Data  *models.ContainerStatistics `json:"data"`                                                          // The container counts per status
	Error *string                     `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterStatisticsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatisticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStatistics)
	r.GET("", GetStatistics)
}

// RegisterContainerStatisticsRoutes registers the routes for container
// statistics with the RouterGroup that is passed.
func RegisterContainerStatisticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStatistics)
	r.GET("", GetContainerStatistics)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/statistics [options]
func OptionsStatistics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get ledger statistics
// @Description	Returns the aggregate weight and value numbers over all invoices and shipments
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	LedgerStatisticsResponse
// @Failure		500	{object}	LedgerStatisticsResponse
// @Router			/v1/statistics [get]
func GetStatistics(c *gin.Context) {
	stats, err := models.LoadLedgerStatistics(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerStatisticsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, LedgerStatisticsResponse{Data: &stats})
}

// @Summary		Get container statistics
// @Description	Returns the container counts for every lifecycle status
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	ContainerStatisticsResponse
// @Failure		500	{object}	ContainerStatisticsResponse
// @Router			/v1/container-statistics [get]
func GetContainerStatistics(c *gin.Context) {
	stats, err := models.LoadContainerStatistics(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContainerStatisticsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ContainerStatisticsResponse{Data: &stats})
}
