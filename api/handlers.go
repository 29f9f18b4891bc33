package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nemopss/budget-tracker/auth"
	"github.com/nemopss/budget-tracker/db"
	"github.com/nemopss/budget-tracker/logging"
	"github.com/nemopss/budget-tracker/models"
	"github.com/nemopss/budget-tracker/summary"
)

type Handler struct {
	store db.Store
	auth  *auth.Service
}

func NewHandler(store db.Store, authService *auth.Service) *Handler {
	return &Handler{store: store, auth: authService}
}

// Root godoc
// @Summary Liveness check
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Budget Tracker API is running"})
}

// Signup godoc
// @Summary Register a new user
// @Accept json
// @Produce json
// @Param user body models.CreateUser true "Email and password"
// @Success 201 {object} models.SignupResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req models.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.serverError(c, err)
		return
	}

	user, err := h.store.CreateUser(req.Email, hash)
	if errors.Is(err, db.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.SignupResponse{ID: user.ID, Email: user.Email})
}

// Login godoc
// @Summary Exchange email and password for a bearer token
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.store.GetUserByEmail(email)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if user == nil || !auth.CheckPassword(password, user.HashedPassword) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	token, err := h.auth.CreateToken(user.ID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// CreateExpense godoc
// @Summary Record an income or expense entry for the caller
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param expense body models.CreateExpense true "Entry to record"
// @Success 201 {object} models.Expense
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /expenses [post]
func (h *Handler) CreateExpense(c *gin.Context) {
	var req models.CreateExpense
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'income' or 'expense'"})
		return
	}
	if req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	if req.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	expense := models.Expense{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Type:        req.Type,
		UserID:      currentUserID(c),
	}
	if err := h.store.CreateExpense(&expense); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// GetExpenses godoc
// @Summary List the caller's entries, date ascending
// @Security BearerAuth
// @Produce json
// @Param month query string false "Restrict to a month (YYYY-MM)"
// @Success 200 {array} models.Expense
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /expenses [get]
func (h *Handler) GetExpenses(c *gin.Context) {
	monthRange, ok := h.monthFilter(c)
	if !ok {
		return
	}
	expenses, err := h.store.ListExpenses(currentUserID(c), monthRange)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GetSummary godoc
// @Summary Income, expense and balance totals
// @Security BearerAuth
// @Produce json
// @Param month query string false "Restrict to a month (YYYY-MM)"
// @Success 200 {object} summary.Totals
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	monthRange, ok := h.monthFilter(c)
	if !ok {
		return
	}
	expenses, err := h.store.ListExpenses(currentUserID(c), monthRange)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary.Compute(expenses))
}

// GetSummaryByCategory godoc
// @Summary Expense totals grouped by category
// @Security BearerAuth
// @Produce json
// @Param month query string false "Restrict to a month (YYYY-MM)"
// @Success 200 {object} map[string]float64
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /summary/category [get]
func (h *Handler) GetSummaryByCategory(c *gin.Context) {
	monthRange, ok := h.monthFilter(c)
	if !ok {
		return
	}
	expenses, err := h.store.ListExpenses(currentUserID(c), monthRange)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary.ByCategory(expenses))
}

// GetSummaryByMonth godoc
// @Summary All-time expense totals grouped by month
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]float64
// @Failure 401 {object} models.ErrorResponse
// @Router /summary/month [get]
func (h *Handler) GetSummaryByMonth(c *gin.Context) {
	expenses, err := h.store.ListExpenses(currentUserID(c), nil)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary.ByMonth(expenses))
}

// DeleteExpense godoc
// @Summary Delete one of the caller's entries
// @Security BearerAuth
// @Produce json
// @Param id path int true "Expense id"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /expenses/{id} [delete]
func (h *Handler) DeleteExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	deleted, err := h.store.DeleteExpense(id, currentUserID(c))
	if err != nil {
		h.serverError(c, err)
		return
	}
	// A missing row and a row owned by someone else look identical to the
	// caller, so other users' records cannot be probed by id.
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// monthFilter parses the optional ?month=YYYY-MM query parameter. It writes
// a 400 response and reports ok=false when the value is malformed.
func (h *Handler) monthFilter(c *gin.Context) (*db.MonthRange, bool) {
	month := c.Query("month")
	if month == "" {
		return nil, true
	}
	r, err := db.ParseMonth(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be formatted as YYYY-MM"})
		return nil, false
	}
	return &r, true
}

func (h *Handler) serverError(c *gin.Context, err error) {
	logging.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
