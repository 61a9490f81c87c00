package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"convai/internal/api/v1/dto"
	"convai/internal/api/v1/handlers"
	"convai/internal/api/v1/services"
)

// ServiceContainer holds all services and settings needed by handlers
type ServiceContainer struct {
	MediaService services.MediaService
	FileService  services.FileService
	Routes       dto.RouteSet
	ScriptPath   string
	MaxUploadMB  int64
}

// RegisterRoutes registers the page, both URL sets and the operational endpoints
func RegisterRoutes(router gin.IRouter, container *ServiceContainer) {
	page := handlers.NewPageHandler(container.FileService, container.Routes)
	media := handlers.NewMediaHandler(container.MediaService, page, container.MaxUploadMB)
	files := handlers.NewFileHandler(container.FileService)
	script := handlers.NewScriptHandler(container.ScriptPath)

	router.GET("/", page.Index)

	for _, set := range []dto.RouteSet{dto.ClassicRoutes, dto.SentimentRoutes} {
		router.POST(set.Upload, media.Upload)
		router.GET(set.UploadFile+":filename", files.Upload)
		router.POST(set.Synthesize, media.Synthesize)
		router.GET(set.AudioFile+":filename", files.Audio)
		router.GET(set.Script, script.Serve)
	}

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
