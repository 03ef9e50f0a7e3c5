package handlers

import (
	"context"
	"net/http"
	"time"

	"backoffice/internal/db"
	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type SystemHandler struct {
	DB     *sqlx.DB
	Engine *gin.Engine
}

func (h *SystemHandler) Health(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "ok"}, "backoffice api is running")
}

// DBCheck pings the database and verifies the schema is migrated.
func (h *SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		RespondError(c, http.StatusServiceUnavailable, "database is not connected")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusServiceUnavailable, "database ping failed")
		return
	}
	missing, err := db.MissingTables(ctx, h.DB, db.RequiredTables)
	if err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusServiceUnavailable, "schema check failed")
		return
	}
	if len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, domain.ApiResponse[gin.H]{
			Success: false,
			Message: "database schema is incomplete",
			Data:    gin.H{"driver": h.DB.DriverName(), "missingTables": missing},
			Errors:  missing,
		})
		return
	}
	respond(c, http.StatusOK, gin.H{"driver": h.DB.DriverName(), "tables": len(db.RequiredTables)}, "database connection OK")
}

// Routes lists the registered routes.
func (h *SystemHandler) Routes(c *gin.Context) {
	if h.Engine == nil {
		RespondError(c, http.StatusServiceUnavailable, "router is not ready")
		return
	}
	routes := h.Engine.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	respond(c, http.StatusOK, out, "")
}
