package handlers

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// addFlash queues a message for the next rendered page
func addFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// popFlashes returns and clears the queued messages
func popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	_ = session.Save()

	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		messages = append(messages, fmt.Sprint(f))
	}
	return messages
}
