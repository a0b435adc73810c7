package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goodreads/internal/adapter/gin/middleware"
	"goodreads/internal/adapter/session"
	"goodreads/internal/usecase/identity"
)

// UserHandler handles registration, login and profile pages.
type UserHandler struct {
	identity  identity.Usecase
	sessions  session.Store
	cookie    string
	cookieTTL int
	log       *zap.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(uc identity.Usecase, sessions session.Store, cookieName string, cookieTTLSeconds int, log *zap.Logger) *UserHandler {
	return &UserHandler{
		identity:  uc,
		sessions:  sessions,
		cookie:    cookieName,
		cookieTTL: cookieTTLSeconds,
		log:       log,
	}
}

// RegisterForm handles GET /users/register/
func (h *UserHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(c, nil))
}

// Register handles POST /users/register/
func (h *UserHandler) Register(c *gin.Context) {
	form := map[string]string{
		"username":   c.PostForm("username"),
		"first_name": c.PostForm("first_name"),
		"last_name":  c.PostForm("last_name"),
		"email":      c.PostForm("email"),
	}

	req := identity.RegisterRequest{
		Username:  form["username"],
		FirstName: form["first_name"],
		LastName:  form["last_name"],
		Email:     form["email"],
		Password:  c.PostForm("password"),
	}

	_, err := h.identity.Register(c.Request.Context(), req)
	if err == nil {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	fields := fieldErrors(err)
	if fields == nil {
		h.log.Error("registration failed", zap.String("username", req.Username), zap.Error(err))
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "register.html", pageData(c, gin.H{
		"Errors": fields,
		"Form":   form,
	}))
}

// LoginForm handles GET /users/login/
func (h *UserHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{
		"Next": c.Query("next"),
	}))
}

// Login handles POST /users/login/
func (h *UserHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	next := c.PostForm("next")

	profile, err := h.identity.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{
			"LoginError": err.Error(),
			"Next":       next,
			"Form":       map[string]string{"username": username},
		}))
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), profile.ID)
	if err != nil {
		h.log.Error("failed to create session", zap.Int64("user_id", profile.ID), zap.Error(err))
		renderError(c, err)
		return
	}

	c.SetCookie(h.cookie, token, h.cookieTTL, "/", "", false, true)
	c.Redirect(http.StatusFound, safeNextURL(next))
}

// Logout handles GET /users/logout/
func (h *UserHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			h.log.Warn("failed to destroy session", zap.Error(err))
		}
	}

	c.SetCookie(h.cookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Profile handles GET /users/profile/
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.identity.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile.html", pageData(c, gin.H{
		"Profile": profile,
	}))
}

// ProfileEditForm handles GET /users/profile/edit/
func (h *UserHandler) ProfileEditForm(c *gin.Context) {
	profile, err := h.identity.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile_edit.html", pageData(c, gin.H{
		"Form": map[string]string{
			"username":   profile.Username,
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"email":      profile.Email,
		},
	}))
}

// ProfileEdit handles POST /users/profile/edit/
func (h *UserHandler) ProfileEdit(c *gin.Context) {
	form := map[string]string{
		"username":   c.PostForm("username"),
		"first_name": c.PostForm("first_name"),
		"last_name":  c.PostForm("last_name"),
		"email":      c.PostForm("email"),
	}

	req := identity.UpdateProfileRequest{
		UserID:    middleware.CurrentUserID(c),
		Username:  form["username"],
		FirstName: form["first_name"],
		LastName:  form["last_name"],
		Email:     form["email"],
	}

	_, err := h.identity.UpdateProfile(c.Request.Context(), req)
	if err == nil {
		c.Redirect(http.StatusFound, "/users/profile/")
		return
	}

	fields := fieldErrors(err)
	if fields == nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile_edit.html", pageData(c, gin.H{
		"Errors": fields,
		"Form":   form,
	}))
}

// safeNextURL restricts post-login redirects to site-local paths.
func safeNextURL(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
