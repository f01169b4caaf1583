// utils/response.go
package utils

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithValidationErrors reports the field -> messages mapping for
// a rejected submission. Nothing has been written when this is sent.
func RespondWithValidationErrors(c *gin.Context, errs FieldErrors) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

// Flash stores a one-time success message delivered with the next
// rendered page.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, "success")
	if err := session.Save(); err != nil {
		log.Printf("Failed to save session: %v", err)
	}
}

// RenderPage sends a page payload to the presentation layer: the
// component to mount, its props, and any flash left by the previous
// request. Reading the flash consumes it.
func RenderPage(c *gin.Context, component string, props interface{}) {
	session := sessions.Default(c)
	var success interface{}
	if flashes := session.Flashes("success"); len(flashes) > 0 {
		success = flashes[0]
		session.Save()
	}

	c.JSON(http.StatusOK, gin.H{
		"component": component,
		"props":     props,
		"flash":     gin.H{"success": success},
	})
}
