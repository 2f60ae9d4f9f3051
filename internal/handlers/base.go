package handlers

import (
	"loop/internal/middleware"
	"loop/internal/models"

	"github.com/gin-gonic/gin"
)

// FormResult is the structured outcome of a form mutation. Exactly one of
// Message or Error is set; validation errors carry the offending field name.
type FormResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

func resultOK(message string) FormResult {
	return FormResult{Success: true, Message: message}
}

func resultError(message string) FormResult {
	return FormResult{Error: message}
}

func fieldError(field, message string) FormResult {
	return FormResult{Error: message, Field: field}
}

// Fixed denial message for author-mismatch and missing-session outcomes.
const permissionDenied = "You do not have permission to perform this action"

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// currentUser returns the authenticated user, or nil outside a session.
func currentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// ownedBy centralizes the author check every mutation performs: the stored
// author ID of the freshly fetched row against the session user.
func ownedBy(user *models.User, authorID uint) bool {
	return user != nil && user.ID == authorID
}
