package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cargoyard/backend/internal/httputil"
	"github.com/cargoyard/backend/internal/models"
	"github.com/cargoyard/backend/internal/nfe"
	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers the routes for invoices with
// the RouterGroup that is passed.
func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsInvoiceList)
	r.GET("", GetInvoices)
	r.POST("", CreateInvoice)

	r.OPTIONS("/:id", OptionsInvoiceDetail)
	r.GET("/:id", GetInvoice)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices [options]
func OptionsInvoiceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/invoices/{id} [options]
func OptionsInvoiceDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, httpError{Error: s})
		return
	}

	var invoice models.Invoice
	err := models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), httpError{Error: s})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get invoice
// @Description	Returns a single invoice with its shipped weight and shipment numbers
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceResponse
// @Failure		400	{object}	InvoiceResponse
// @Failure		404	{object}	InvoiceResponse
// @Failure		500	{object}	InvoiceResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/invoices/{id} [get]
func GetInvoice(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceResponse{Error: &s})
		return
	}

	var invoice models.Invoice
	err := models.DB.First(&invoice, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &s})
		return
	}

	err = invoice.WithCalculations(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{Error: &s})
		return
	}

	data := newInvoice(c, invoice)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &data})
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Upload invoice
// @Description	Parses an uploaded NFe XML document and records the invoice it contains
// @Tags			Invoices
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	InvoiceResponse
// @Failure		400		{object}	InvoiceResponse
// @Failure		500		{object}	InvoiceResponse
// @Param			file	formData	file	true	"NFe XML file"
// @Router			/v1/invoices [post]
func CreateInvoice(c *gin.Context) {
	f, err := getUploadedFile(c, ".xml")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}
	defer f.Close()

	document, err := nfe.Parse(f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	invoice := models.Invoice{
		Number:      document.Number,
		IssueDate:   document.IssueDate,
		Product:     document.Product,
		WeightKg:    document.WeightKg,
		Value:       document.Value,
		IssuerID:    document.IssuerID,
		RecipientID: document.RecipientID,
	}

	err = models.DB.Create(&invoice).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &s,
		})
		return
	}

	data := newInvoice(c, invoice)
	c.JSON(http.StatusCreated, InvoiceResponse{Data: &data})
}

// @Summary		Get invoices
// @Description	Returns all invoices with their shipped weight and shipment numbers, newest issue date first
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceListResponse
// @Failure		500	{object}	InvoiceListResponse
// @Router			/v1/invoices [get]
func GetInvoices(c *gin.Context) {
	invoices, err := models.LoadInvoices(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		data = append(data, newInvoice(c, invoice))
	}

	c.JSON(http.StatusOK, InvoiceListResponse{Data: data})
}
