package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"homenest/server/internal/auth"
	"homenest/server/internal/catalog"
	"homenest/server/internal/favorites"
	"homenest/server/internal/models"
	"homenest/server/internal/mortgage"
	"homenest/server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ThemeSlot is the storage key holding the UI theme ("light" or "dark").
const ThemeSlot = "theme"

type Handler struct {
	catalog     *catalog.Catalog
	credentials *auth.CredentialStore
	favorites   *favorites.Set
	store       storage.Store
	logger      *logrus.Logger
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	City     string `json:"city"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func NewHandler(cat *catalog.Catalog, credentials *auth.CredentialStore, favs *favorites.Set, store storage.Store, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		catalog:     cat,
		credentials: credentials,
		favorites:   favs,
		store:       store,
		logger:      logger,
	}
}

// GetProperties returns the listings matching the query, type and
// priceRange parameters, in catalog order.
func (h *Handler) GetProperties(c *gin.Context) {
	segment := c.DefaultQuery("segment", models.SegmentBuy)
	criteria := catalog.Criteria{
		Query:      c.Query("query"),
		Type:       c.DefaultQuery("type", "all"),
		PriceRange: c.DefaultQuery("priceRange", "all"),
	}

	matched := catalog.Filter(h.catalog.Segment(segment), criteria)
	c.JSON(http.StatusOK, gin.H{
		"properties": matched,
		"total":      len(matched),
	})
}

// GetProperty returns one property by id.
func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	property, ok := h.catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetCatalogStats returns summary figures for one segment.
func (h *Handler) GetCatalogStats(c *gin.Context) {
	segment := c.DefaultQuery("segment", models.SegmentBuy)
	c.JSON(http.StatusOK, h.catalog.Stats(segment))
}

// GetMortgageRates returns the static rate sheet and FAQ content.
func (h *Handler) GetMortgageRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rates": mortgage.Rates(),
		"faqs":  mortgage.FAQs(),
	})
}

// SignUp registers a new account and returns its public record.
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse signup request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	profile := models.User{
		Email: req.Email,
		Name:  req.Name,
		City:  req.City,
		Role:  models.RoleJustBrowsing,
	}

	user, err := h.credentials.Register(profile, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		h.logger.WithError(err).Error("Failed to register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, user.Public())
}

// SignIn verifies credentials and returns the matching public record.
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse signin request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	user, err := h.credentials.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.logger.WithError(err).Error("Failed to authenticate user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate user"})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// UpdateProfile replaces the stored record matching the body's email.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var updated models.User
	if err := c.ShouldBindJSON(&updated); err != nil {
		h.logger.WithError(err).Error("Failed to parse profile update")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}
	if updated.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	user, err := h.credentials.UpdateProfile(updated)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// GetFavorites returns the saved property ids.
func (h *Handler) GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": h.favorites.List()})
}

// ToggleFavorite flips the saved state of one property.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}
	if !h.catalog.Has(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	saved, err := h.favorites.Toggle(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to toggle favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "saved": saved})
}

// GetTheme returns the persisted theme, defaulting to light.
func (h *Handler) GetTheme(c *gin.Context) {
	theme, err := h.store.Get(ThemeSlot)
	if err != nil || (theme != "light" && theme != "dark") {
		theme = "light"
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SetTheme persists the theme. Only "light" and "dark" are accepted.
func (h *Handler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Theme must be light or dark"})
		return
	}

	if err := h.store.Set(ThemeSlot, req.Theme); err != nil {
		h.logger.WithError(err).Error("Failed to persist theme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
