package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"convai/internal/api/middleware"
	"convai/internal/api/v1/dto"
	"convai/internal/api/v1/services"
	"convai/web"
)

// PageHandler renders the single page listing view
type PageHandler struct {
	files  services.FileService
	routes dto.RouteSet
}

// NewPageHandler creates a new page handler
func NewPageHandler(files services.FileService, routes dto.RouteSet) *PageHandler {
	return &PageHandler{
		files:  files,
		routes: routes,
	}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	h.Render(c, dto.IndexView{})
}

// Render fills in the listings and routes, then renders view. Flashes queued by an
// earlier redirect are shown before the ones already set on view.
func (h *PageHandler) Render(c *gin.Context, view dto.IndexView) {
	files, err := h.files.ListUploads()
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	audios, err := h.files.ListAudio()
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	view.Files = files
	view.Audios = audios
	view.Flashes = append(popFlashes(c), view.Flashes...)
	view.Routes = h.routes

	c.HTML(http.StatusOK, web.IndexTemplate, view)
}
