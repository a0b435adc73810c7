package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"goodreads/internal/adapter/gin/middleware"
	"goodreads/internal/domain/paging"
	apperrors "goodreads/pkg/errors"
)

// pageData builds the base template payload. Every page template
// expects the Errors and Form keys, so they are always present even
// when empty.
func pageData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"IsAuthenticated": middleware.CurrentUserID(c) > 0,
		"Errors":          map[string]string{},
		"Form":            map[string]string{},
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// fieldErrors extracts per-field messages from a validation error,
// or nil when the error is of another kind.
func fieldErrors(err error) map[string]string {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

// queryInt64 parses an integer query parameter, falling back to def on
// absent or malformed values.
func queryInt64(c *gin.Context, name string, def int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return v
}

// pageURL rebuilds the current path with the page parameter replaced,
// preserving the remaining query string.
func pageURL(c *gin.Context, page int64) string {
	q := c.Request.URL.Query()
	q.Set("page", strconv.FormatInt(page, 10))
	u := url.URL{Path: c.Request.URL.Path, RawQuery: q.Encode()}
	return u.String()
}

// paginationData returns the Pagination, PrevURL and NextURL keys the
// pagination partial renders from.
func paginationData(c *gin.Context, p *paging.Pagination) gin.H {
	data := gin.H{"Pagination": p}
	if p == nil {
		return data
	}
	if p.HasPrev() {
		data["PrevURL"] = pageURL(c, p.PrevPage())
	}
	if p.HasNext() {
		data["NextURL"] = pageURL(c, p.NextPage())
	}
	return data
}

// renderError writes the error page with a status derived from the
// error kind.
func renderError(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Something went wrong. Please try again later."
	}

	c.HTML(status, "error.html", pageData(c, gin.H{
		"Status":  status,
		"Message": message,
	}))
}
