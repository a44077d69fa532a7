package api

import (
	"errors"
	"io"
	"net/http"

	resdto "authentithief/internal/handler/dto/response"
	"authentithief/internal/handler/httperr"
	"authentithief/internal/usecase/scanner"
	"authentithief/internal/usecase/verification"

	"github.com/gin-gonic/gin"
)

const uploadField = "image"

type VerifyHandler struct {
	verifier verification.Verifier
	uploads  scanner.UploadScanner
}

func NewVerifyHandler(verifier verification.Verifier, uploads scanner.UploadScanner) *VerifyHandler {
	return &VerifyHandler{verifier: verifier, uploads: uploads}
}

// @Summary Verify decoded payload
// @Description Verify the decoded QR payload against the ledger and record the scan
// @Tags verification
// @Accept json
// @Produce json
// @Param request body qrpayload.Payload true "Decoded QR payload"
// @Success 200 {object} resdto.VerificationResponse
// @Failure 413 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/verify [post]
func (h *VerifyHandler) Verify(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortBodyError(c, err)
		return
	}
	res, err := h.verifier.VerifyRaw(c.Request.Context(), body)
	if err != nil {
		httperr.AbortWithStatusOf(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(res))
}

// @Summary Scan uploaded image
// @Description Decode the QR code in an uploaded image and verify it
// @Tags verification
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image containing a QR code"
// @Success 200 {object} resdto.VerificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/scan/upload [post]
func (h *VerifyHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		abortBodyError(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable upload", nil)
		return
	}
	defer f.Close()

	res, err := h.uploads.ScanUpload(c.Request.Context(), f)
	if err != nil {
		var detail any
		if res != nil {
			detail = resdto.FromResult(res)
		}
		httperr.AbortWithStatusOf(c, err, detail)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResult(res))
}

func abortBodyError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Upload too large", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
