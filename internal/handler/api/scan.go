package api

import (
	"net/http"

	"authentithief/internal/handler/httperr"
	"authentithief/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	q queries.ScanQueries
}

func NewScanHandler(q queries.ScanQueries) *ScanHandler {
	return &ScanHandler{q: q}
}

// @Summary Get scan record
// @Description Get the scan history of one product identity key
// @Tags scans
// @Produce json
// @Param key path string true "Identity key"
// @Success 200 {object} queries.ScanView
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/scans/{key} [get]
func (h *ScanHandler) Get(c *gin.Context) {
	view, err := h.q.GetScan(c.Request.Context(), c.Param("key"))
	if err != nil {
		httperr.AbortWithStatusOf(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, view)
}
