package v1

import (
	"io"
	"net/http"
	"strings"

	"github.com/billtrail/backend/internal/classifier"
	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/importer"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterImportRoutes registers the routes for classification and
// document import with the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/classify", co.OptionsClassify)
	r.POST("/classify", co.Classify)
	r.OPTIONS("/uploads", co.OptionsUploads)
	r.POST("/uploads", co.CreateUploads)
	r.OPTIONS("/email-import", co.OptionsEmailImport)
	r.GET("/email-import", co.GetEmailScan)
	r.POST("/email-import", co.CreateEmailImport)
}

func (co Controller) importer() importer.Importer {
	return importer.Importer{
		Bills: co.Store.Bills(),
		Recognizer: classifier.Recognizer{
			Extractor: classifier.RandomExtractor{Source: co.Source},
		},
		Now: co.Now,
	}
}

func countClassified(processed []importer.ProcessedFile) {
	for _, p := range processed {
		billsClassified.WithLabelValues(p.Category).Inc()
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/classify [options]
func (co Controller) OptionsClassify(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Classify
// @Description	Guesses the title and category of a bill from a file name or email subject
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		200		{object}	ClassifyResponse
// @Failure		400		{object}	ClassifyResponse
// @Param			request	body		ClassifyRequest	true	"File name"
// @Router			/v1/classify [post]
func (co Controller) Classify(c *gin.Context) {
	var request ClassifyRequest
	if err := httputil.BindData(c, &request); err != nil {
		e := err.Error()
		c.JSON(status(err), ClassifyResponse{Error: &e})
		return
	}

	if strings.TrimSpace(request.FileName) == "" {
		e := errFileNameEmpty.Error()
		c.JSON(http.StatusBadRequest, ClassifyResponse{Error: &e})
		return
	}

	guess := classifier.Classify(request.FileName)
	billsClassified.WithLabelValues(guess.Category).Inc()

	c.JSON(http.StatusOK, ClassifyResponse{Data: &guess})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/uploads [options]
func (co Controller) OptionsUploads(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Upload bills
// @Description	Creates one upcoming bill for every uploaded document. Title and category are guessed from the file name.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"Documents to import, the field can be repeated"
// @Router			/v1/uploads [post]
func (co Controller) CreateUploads(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["file"]) == 0 {
		e := errNoFilePost.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &e})
		return
	}

	files := make([]importer.File, 0, len(form.File["file"]))
	for _, header := range form.File["file"] {
		f, err := header.Open()
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Str("file", header.Filename).Err(err).Msg("Could not open upload")
			e := errFileUnreadable.Error()
			c.JSON(http.StatusBadRequest, ImportResponse{Error: &e})
			return
		}

		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Str("file", header.Filename).Err(err).Msg("Could not read upload")
			e := errFileUnreadable.Error()
			c.JSON(http.StatusBadRequest, ImportResponse{Error: &e})
			return
		}

		files = append(files, importer.File{
			Name:    header.Filename,
			Type:    header.Header.Get("Content-Type"),
			Content: content,
		})
	}

	processed, err := co.importer().Upload(c, files)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{Error: &e})
		return
	}
	countClassified(processed)

	c.JSON(http.StatusCreated, ImportResponse{Data: processed})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/email-import [options]
func (co Controller) OptionsEmailImport(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Scan mailbox
// @Description	Returns the bills found in the mailbox. Nothing is imported yet.
// @Tags			Import
// @Produce		json
// @Success		200	{object}	EmailScanResponse
// @Router			/v1/email-import [get]
func (co Controller) GetEmailScan(c *gin.Context) {
	scanner := classifier.EmailScanner{Source: co.Source}
	c.JSON(http.StatusOK, EmailScanResponse{Data: scanner.Scan(co.today())})
}

// @Summary		Import email bills
// @Description	Creates one upcoming bill for every attachment. The bill is named after the email subject.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			request	body		EmailImportRequest	true	"Attachments"
// @Router			/v1/email-import [post]
func (co Controller) CreateEmailImport(c *gin.Context) {
	var request EmailImportRequest
	if err := httputil.BindData(c, &request); err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{Error: &e})
		return
	}

	if len(request.Attachments) == 0 {
		e := errNoAttachments.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &e})
		return
	}

	processed, err := co.importer().ImportEmail(c, request.Attachments)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{Error: &e})
		return
	}
	countClassified(processed)

	c.JSON(http.StatusCreated, ImportResponse{Data: processed})
}
