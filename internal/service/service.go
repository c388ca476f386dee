package service

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gitlab.com/cielprofs/website-backend/internal/mail"
	"gitlab.com/cielprofs/website-backend/internal/model"
	"gitlab.com/cielprofs/website-backend/internal/store"
	"gitlab.com/cielprofs/website-backend/internal/validate"
)

// Service bundles the storage layer and the optional notifier behind the
// HTTP handlers. A nil notifier disables contact notifications entirely.
type Service struct {
	store    *store.Store
	notifier *mail.Notifier
}

// New creates the service with its dependencies injected.
func New(st *store.Store, notifier *mail.Notifier) *Service {
	return &Service{store: st, notifier: notifier}
}

// subscribeRequest is the POST /api/newsletter payload.
type subscribeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Interest string `json:"interest"`
}

// contactRequest is the POST /api/contact payload.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Topic   string `json:"topic"`
	Message string `json:"message"`
}

// SetupHttpRouter initializes the REST API router and registers all
// endpoints. Cross-origin access to the /api routes is restricted to the
// given origin allow-list; the health endpoint stays same-origin only.
func (s *Service) SetupHttpRouter(allowedOrigins []string) *gin.Engine {
	var router *gin.Engine
	if strings.EqualFold(os.Getenv("GIN_LOGGING"), "off") {
		router = gin.New()
		router.Use(gin.Recovery())
	} else {
		router = gin.Default()
	}

	router.GET("/health", s.health)

	api := router.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodPost},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	api.POST("/newsletter", s.subscribeNewsletter)
	api.POST("/contact", s.submitContact)

	return router
}

// health responds with a liveness confirmation and the current UTC time. It
// has no side effects and does not touch the database.
//
// Example REST API call:
//
//	> curl "http://localhost:5000/health"
func (s *Service) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// subscribeNewsletter stores a newsletter sign-up. The email address is
// required and checked for plausible shape; name and interest are optional.
// A duplicate email answers with OK instead of CREATED so that resubmitting
// the form is painless for the visitor.
//
// Example REST API call:
//
//	> curl http://localhost:5000/api/newsletter --request "POST" --header "Content-Type: application/json" --data '{"name": "Ada", "email": "ada@example.com", "interest": "courses"}'
func (s *Service) subscribeNewsletter(c *gin.Context) {
	var req subscribeRequest
	// A malformed body is treated like an empty one so that the response
	// carries the field-level message instead of a JSON parse error.
	_ = c.ShouldBindJSON(&req)

	email := validate.NormalizeEmail(req.Email)
	if !validate.IsValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Valid email is required"})
		return
	}

	subscriber := model.Subscriber{
		Name:      validate.Normalize(req.Name),
		Email:     email,
		Interest:  validate.Normalize(req.Interest),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	outcome, err := s.store.InsertSubscriber(c.Request.Context(), &subscriber)
	if err != nil {
		slog.Error("could not store subscriber", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
		return
	}
	if outcome == store.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Already subscribed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Subscribed"})
}

// submitContact stores a contact-form submission and then attempts the
// best-effort notifications. Name, email and message are required and
// checked in that order; the first violation wins. The response does not
// reflect the notification outcome: once the row is committed the
// submission counts as received.
//
// Example REST API call:
//
//	> curl http://localhost:5000/api/contact --request "POST" --header "Content-Type: application/json" --data '{"name": "Ada", "email": "ada@example.com", "message": "Hello"}'
func (s *Service) submitContact(c *gin.Context) {
	var req contactRequest
	_ = c.ShouldBindJSON(&req)

	name := validate.Normalize(req.Name)
	email := validate.NormalizeEmail(req.Email)
	message := validate.Normalize(req.Message)

	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Name is required"})
		return
	}
	if !validate.IsValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Valid email is required"})
		return
	}
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Message is required"})
		return
	}

	contact := model.ContactMessage{
		Name:      name,
		Email:     email,
		Phone:     validate.Normalize(req.Phone),
		Topic:     validate.Normalize(req.Topic),
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.InsertContactMessage(c.Request.Context(), &contact); err != nil {
		slog.Error("could not store contact message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
		return
	}

	if s.notifier != nil {
		s.notifier.ContactSubmitted(c.Request.Context(), contact)
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Message received"})
}
