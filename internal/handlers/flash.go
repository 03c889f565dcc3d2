package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "lifehub_flash"

// Flash is the one-shot feedback message a mutating request leaves for the
// next page render. Category is one of success, warning, danger, error.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func setFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookie, category+"|"+message, 60, "/", "", false, true)
}

// takeFlash consumes the pending flash, clearing the cookie so the message
// renders exactly once.
func takeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	parts := strings.SplitN(raw, "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Flash{Category: parts[0], Message: parts[1]}
}
