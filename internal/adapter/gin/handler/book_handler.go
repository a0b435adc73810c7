package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goodreads/internal/usecase/catalog"
)

// BookHandler renders the book catalog pages.
type BookHandler struct {
	catalog catalog.Usecase
	log     *zap.Logger
}

// NewBookHandler creates a new BookHandler instance.
func NewBookHandler(uc catalog.Usecase, log *zap.Logger) *BookHandler {
	return &BookHandler{catalog: uc, log: log}
}

// List handles GET /books/
func (h *BookHandler) List(c *gin.Context) {
	req := catalog.ListBooksRequest{
		Query:    c.Query("q"),
		Page:     queryInt64(c, "page", 1),
		PageSize: queryInt64(c, "page_size", 0),
	}

	resp, err := h.catalog.ListBooks(c.Request.Context(), req)
	if err != nil {
		h.log.Error("failed to list books", zap.Error(err))
		renderError(c, err)
		return
	}

	data := pageData(c, gin.H{
		"Books": resp.Books,
		"Query": resp.Query,
		"Empty": resp.Empty(),
	})
	for k, v := range paginationData(c, resp.Pagination) {
		data[k] = v
	}
	c.HTML(http.StatusOK, "book_list.html", data)
}

// Detail handles GET /books/:id/
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", pageData(c, gin.H{
			"Status":  http.StatusNotFound,
			"Message": "Book not found.",
		}))
		return
	}

	resp, err := h.catalog.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_detail.html", pageData(c, gin.H{
		"Book":    resp.Book,
		"Reviews": resp.Reviews,
	}))
}
