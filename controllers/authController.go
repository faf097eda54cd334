package controllers

import (
	"log"
	"net/http"
	"os"

	"karyasetu-be/middlewares"
	"karyasetu-be/models"
	"karyasetu-be/store"
	authUtils "karyasetu-be/utils"

	"github.com/gin-gonic/gin"
)

// AuthController serves the citizen and government authentication flows.
type AuthController struct {
	identity *store.IdentityService
}

func NewAuthController(identity *store.IdentityService) *AuthController {
	return &AuthController{identity: identity}
}

// CitizenAuthPage describes the citizen auth form. An already-authenticated
// caller is sent straight to their dashboard instead.
func (ac *AuthController) CitizenAuthPage(c *gin.Context) {
	if user := middlewares.ResolveUser(c, ac.identity); user != nil {
		c.Redirect(http.StatusFound, dashboardPath(user.Role))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"audience": "citizen",
		"roles":    []models.Role{models.RoleCitizen},
		"login":    "/auth/citizen/login",
		"signup":   "/auth/citizen/signup",
	})
}

// GovernmentAuthPage mirrors CitizenAuthPage for the government audience.
func (ac *AuthController) GovernmentAuthPage(c *gin.Context) {
	if user := middlewares.ResolveUser(c, ac.identity); user != nil {
		c.Redirect(http.StatusFound, dashboardPath(user.Role))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"audience": "government",
		"roles":    models.GovernmentRoles,
		"regions":  models.JharkhandRegions,
		"login":    "/auth/government/login",
		"signup":   "/auth/government/signup",
	})
}

// CitizenLogin authenticates a citizen. Mock auth: the password is accepted
// unchecked and the login always succeeds.
func (ac *AuthController) CitizenLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ac.login(c, input.Email, input.Password, models.RoleCitizen)
}

// GovernmentLogin authenticates an admin or field officer.
func (ac *AuthController) GovernmentLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required,oneof=admin field_officer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ac.login(c, input.Email, input.Password, models.Role(input.Role))
}

func (ac *AuthController) login(c *gin.Context, email, password string, role models.Role) {
	user, err := ac.identity.Login(c.Request.Context(), email, password, role)
	if err != nil {
		log.Println("Error logging in:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	ac.establishSession(c, user, http.StatusOK)
}

// CitizenSignup registers a citizen. The confirm-password check is a
// per-field validation error, not a blocking alert.
func (ac *AuthController) CitizenSignup(c *gin.Context) {
	var input struct {
		Name            string `json:"name" binding:"required,max=50"`
		Email           string `json:"email" binding:"required,email"`
		Phone           string `json:"phone" binding:"omitempty,max=20"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := store.SignupDraft{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
	}
	ac.signup(c, draft, models.RoleCitizen)
}

// GovernmentSignup registers an admin or field officer. Field officers must
// supply both a region and a department.
func (ac *AuthController) GovernmentSignup(c *gin.Context) {
	var input struct {
		Name            string `json:"name" binding:"required,max=50"`
		Email           string `json:"email" binding:"required,email"`
		Phone           string `json:"phone" binding:"omitempty,max=20"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
		Role            string `json:"role" binding:"required,oneof=admin field_officer"`
		Region          string `json:"region" binding:"required"`
		Department      string `json:"department" binding:"required_if=Role field_officer,omitempty,oneof=sanitation roads electrical"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := store.SignupDraft{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Password:   input.Password,
		Region:     input.Region,
		Department: input.Department,
	}
	ac.signup(c, draft, models.Role(input.Role))
}

func (ac *AuthController) signup(c *gin.Context, draft store.SignupDraft, role models.Role) {
	user, err := ac.identity.Signup(c.Request.Context(), draft, role)
	if err != nil {
		log.Println("Error signing up:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	ac.establishSession(c, user, http.StatusCreated)
}

func (ac *AuthController) establishSession(c *gin.Context, user *models.User, status int) {
	token, err := authUtils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     middlewares.CookieName,
		Value:    token,
		MaxAge:   3600 * 72,
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(status, gin.H{
		"user":     userPayload(user),
		"redirect": dashboardPath(user.Role),
	})
}

// Logout clears the current user and expires the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.identity.Logout(c.Request.Context()); err != nil {
		log.Println("Error logging out:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")
	c.SetCookie(middlewares.CookieName, "", -1, "/", domain, environment == "production", true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the authenticated user's information.
func (ac *AuthController) Me(c *gin.Context) {
	user := middlewares.ResolveUser(c, ac.identity)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, userPayload(user))
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role,
		"region":     user.Region,
		"department": user.Department,
		"createdAt":  user.CreatedAt,
	}
}

func dashboardPath(role models.Role) string {
	if role == models.RoleCitizen {
		return "/citizen"
	}
	return "/admin"
}
