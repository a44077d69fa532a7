package api

import (
	"net/http"

	reqdto "authentithief/internal/handler/dto/request"
	resdto "authentithief/internal/handler/dto/response"
	"authentithief/internal/handler/httperr"
	"authentithief/internal/usecase/commands"
	"authentithief/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary Register product
// @Description Register a product on the ledger and return its QR payload and code
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterProductRequest true "Register product request"
// @Success 201 {object} resdto.RegisterProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/products [post]
func (h *ProductHandler) Register(c *gin.Context) {
	var req reqdto.RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RegisterProduct(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithStatusOf(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary List products
// @Description Browse ledger records in registration order
// @Tags products
// @Produce json
// @Param start query int false "Index of the first record"
// @Param count query int false "Page size (max 200)"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var q reqdto.ListProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.ListProducts(c.Request.Context(), q.Start, q.Count)
	if err != nil {
		httperr.AbortWithStatusOf(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductPage(page))
}
