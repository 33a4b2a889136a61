// Package web exposes the order form and the admin triage API over HTTP.
package web

import (
	"pyronix-studio/internal/auth"

	"github.com/gin-gonic/gin"
)

func NewRouter(draftHandler *DraftHandler, adminHandler *AdminHandler, authService *auth.Service) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/v1")
	v1.GET("/catalog", draftHandler.GetCatalog)

	drafts := v1.Group("/drafts")
	{
		drafts.POST("", draftHandler.CreateSession)
		drafts.GET("/:id", draftHandler.GetSession)
		drafts.PATCH("/:id", draftHandler.UpdateFields)
		drafts.POST("/:id/styles", draftHandler.ToggleStyle)
		drafts.POST("/:id/languages", draftHandler.SetLanguage)
		drafts.POST("/:id/advance", draftHandler.Advance)
		drafts.POST("/:id/retreat", draftHandler.Retreat)
		drafts.POST("/:id/submit", draftHandler.Submit)
	}

	admin := v1.Group("/admin")
	admin.POST("/login", adminHandler.Login)

	authed := admin.Group("", RequireSession(authService))
	{
		authed.POST("/logout", adminHandler.Logout)
		authed.GET("/session", adminHandler.GetSession)
		authed.GET("/orders", adminHandler.ListOrders)
		authed.GET("/orders/:id", adminHandler.GetOrder)
		authed.PATCH("/orders/:id/status", adminHandler.UpdateStatus)
		authed.DELETE("/orders/:id", adminHandler.DeleteOrder)
	}

	return router
}
