package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goodreads/internal/adapter/gin/middleware"
	"goodreads/internal/usecase/catalog"
	"goodreads/internal/usecase/review"
	apperrors "goodreads/pkg/errors"
)

// ReviewHandler handles review submission and the read-only review API.
type ReviewHandler struct {
	reviews review.Usecase
	catalog catalog.Usecase
	log     *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(reviews review.Usecase, catalog catalog.Usecase, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, catalog: catalog, log: log}
}

// Submit handles POST /books/:id/reviews/
func (h *ReviewHandler) Submit(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", pageData(c, gin.H{
			"Status":  http.StatusNotFound,
			"Message": "Book not found.",
		}))
		return
	}

	stars, _ := strconv.Atoi(c.PostForm("stars_given"))
	req := review.SubmitReviewRequest{
		BookID:     bookID,
		UserID:     middleware.CurrentUserID(c),
		StarsGiven: stars,
		Comment:    c.PostForm("comment"),
	}

	_, err = h.reviews.SubmitReview(c.Request.Context(), req)
	if err == nil {
		c.Redirect(http.StatusFound, "/books/"+strconv.FormatInt(bookID, 10)+"/")
		return
	}

	fields := fieldErrors(err)
	if fields == nil {
		h.log.Error("failed to submit review", zap.Int64("book_id", bookID), zap.Error(err))
		renderError(c, err)
		return
	}

	// Re-render the detail page with the rejected input alongside the
	// field errors.
	detail, derr := h.catalog.GetBookDetail(c.Request.Context(), bookID)
	if derr != nil {
		renderError(c, derr)
		return
	}

	c.HTML(http.StatusOK, "book_detail.html", pageData(c, gin.H{
		"Book":    detail.Book,
		"Reviews": detail.Reviews,
		"Errors":  fields,
		"Form": map[string]string{
			"stars_given": c.PostForm("stars_given"),
			"comment":     c.PostForm("comment"),
		},
	}))
}

// Get handles GET /api/reviews/:id/
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	resp, err := h.reviews.GetReview(c.Request.Context(), id)
	if err != nil {
		status := apperrors.StatusOf(err)
		if status == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
			return
		}
		h.log.Error("failed to get review", zap.Int64("review_id", id), zap.Error(err))
		c.JSON(status, gin.H{"detail": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, resp)
}
