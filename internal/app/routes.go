package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akvfolio/portfolio-core/internal/modules/article"
	"github.com/akvfolio/portfolio-core/internal/modules/blog"
	"github.com/akvfolio/portfolio-core/internal/modules/book"
	"github.com/akvfolio/portfolio-core/internal/modules/certificate"
	"github.com/akvfolio/portfolio-core/internal/modules/gallery"
	"github.com/akvfolio/portfolio-core/internal/modules/resume"
	"github.com/akvfolio/portfolio-core/internal/modules/todo"
	"github.com/akvfolio/portfolio-core/internal/modules/video"
	"github.com/akvfolio/portfolio-core/internal/modules/visitor"
	"github.com/akvfolio/portfolio-core/internal/pkg/geoip"
	"github.com/akvfolio/portfolio-core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	store := a.store

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/api/ping", func(c *gin.Context) {
		response.OK(c, gin.H{
			"message": "pong",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	gallery.NewHandler(gallery.NewService(db, store)).RegisterRoutes(r)
	article.NewHandler(article.NewService(db, store)).RegisterRoutes(r)
	blog.NewHandler(blog.NewService(db, store)).RegisterRoutes(r)
	resume.NewHandler(resume.NewService(db, store)).RegisterRoutes(r)
	book.NewHandler(book.NewService(db, store)).RegisterRoutes(r)
	certificate.NewHandler(certificate.NewService(db, store)).RegisterRoutes(r)
	video.NewHandler(video.NewService(db)).RegisterRoutes(r)
	todo.NewHandler(todo.NewService(db)).RegisterRoutes(r)

	resolver := geoip.NewClient(a.cfg.Analytics.GeoAPIBase)
	visitorSvc := visitor.NewService(db, resolver, a.cfg.Analytics.FallbackCountry, a.cfg.Analytics.DevPlaceholderIP)
	visitor.NewHandler(visitorSvc).RegisterRoutes(r)

	store.RegisterStatic(r)
}
