package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"convai/web"
)

const javascriptContentType = "application/javascript; charset=utf-8"

// ScriptHandler serves the recorder script
type ScriptHandler struct {
	overridePath string
}

// NewScriptHandler serves the file at overridePath when it exists, the embedded
// script otherwise
func NewScriptHandler(overridePath string) *ScriptHandler {
	return &ScriptHandler{overridePath: overridePath}
}

// Serve handles GET /script.js and GET /scripts.js
func (h *ScriptHandler) Serve(c *gin.Context) {
	if h.overridePath != "" {
		if info, err := os.Stat(h.overridePath); err == nil && !info.IsDir() {
			c.Header("Content-Type", javascriptContentType)
			c.File(h.overridePath)
			return
		}
	}
	c.Data(http.StatusOK, javascriptContentType, web.Script())
}
