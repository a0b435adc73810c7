package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goodreads/internal/usecase/review"
)

// HomeHandler renders the landing page with the most recent reviews.
type HomeHandler struct {
	reviews review.Usecase
	log     *zap.Logger
}

// NewHomeHandler creates a new HomeHandler instance.
func NewHomeHandler(reviews review.Usecase, log *zap.Logger) *HomeHandler {
	return &HomeHandler{reviews: reviews, log: log}
}

// Home handles GET /
func (h *HomeHandler) Home(c *gin.Context) {
	page := queryInt64(c, "page", 1)
	pageSize := queryInt64(c, "page_size", 0)

	resp, err := h.reviews.ListRecent(c.Request.Context(), page, pageSize)
	if err != nil {
		h.log.Error("failed to list recent reviews", zap.Error(err))
		renderError(c, err)
		return
	}

	data := pageData(c, gin.H{"Reviews": resp.Reviews})
	for k, v := range paginationData(c, resp.Pagination) {
		data[k] = v
	}
	c.HTML(http.StatusOK, "home.html", data)
}
