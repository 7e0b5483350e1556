package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/middleware"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/repositories"
	"github.com/socialweb-app/backend/internal/session"
	"golang.org/x/crypto/bcrypt"
)

var usernameRE = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthHandler handles registration, login and logout with the session store.
type AuthHandler struct {
	users      repositories.UserRepository
	sessions   *session.Store
	sessionTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessions *session.Store, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: userRepo, sessions: sessions, sessionTTL: sessionTTL}
}

// RegisterAuthRoutes registers the unprotected auth routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.GET("/register", h.RegisterPage)
	e.POST("/register", h.Register)
	e.POST("/logout", h.Logout)
}

// Root redirects to home when logged in, otherwise to the login page
func (h *AuthHandler) Root(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		identity, err := h.sessions.Get(c.Request().Context(), cookie.Value)
		if err == nil && identity.Username != "" {
			return c.Redirect(http.StatusFound, "/home")
		}
	}
	return c.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

// Login authenticates the user and opens a session
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if username == "" || password == "" {
		return c.Render(http.StatusBadRequest, "login.html", echo.Map{"Error": "Ingresa usuario y contraseña."})
	}

	user, err := h.users.GetUserByUsername(username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return c.Render(http.StatusUnauthorized, "login.html", echo.Map{"Error": "Usuario o contraseña incorrectos."})
	}

	return h.openSession(c, user)
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{})
}

// Register creates a new account and logs it in
func (h *AuthHandler) Register(c echo.Context) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	password2 := c.FormValue("password2")

	renderError := func(msg string) error {
		return c.Render(http.StatusBadRequest, "register.html", echo.Map{"Error": msg})
	}

	if !usernameRE.MatchString(username) {
		return renderError("El nombre de usuario solo puede contener letras, números y _.")
	}
	if !emailRE.MatchString(email) {
		return renderError("Correo electrónico inválido.")
	}
	if password == "" || password != password2 {
		return renderError("Las contraseñas no coinciden.")
	}
	if _, err := h.users.GetUserByUsername(username); err == nil {
		return renderError("El nombre de usuario ya existe.")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if _, err := h.users.GetUserByEmail(email); err == nil {
		return renderError("El correo ya está registrado.")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		UID:          uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := h.users.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return h.openSession(c, user)
}

// Logout revokes the session and clears the cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		_ = h.sessions.Delete(c.Request().Context(), cookie.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) openSession(c echo.Context, user *models.User) error {
	token, err := h.sessions.Create(c.Request().Context(), session.Identity{
		Username: user.Username,
		UID:      user.UID,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open session")
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/home")
}
