package controllers

import (
	"RaacProms/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPortalRoutes registers the patient-facing portal route. It is served
// without bearer authentication; access is gated by the per-patient token.
func SetupPortalRoutes(router *gin.Engine, portalHandler *handlers.PortalHandler) {
	router.GET("/portal", portalHandler.GetPortal)
}
