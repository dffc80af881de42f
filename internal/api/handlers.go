// Package api exposes the portfolio's HTTP surface.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kapu/portfolio-backend-go/internal/constants"
	"github.com/kapu/portfolio-backend-go/internal/service/database"
	"github.com/kapu/portfolio-backend-go/internal/store"
	apierrors "github.com/kapu/portfolio-backend-go/pkg/errors"
	"go.uber.org/zap"
)

// databaseProber is satisfied by *database.Prober.
type databaseProber interface {
	Probe(ctx context.Context) database.Status
}

type Handler struct {
	profiles  *store.ProfileStore
	diary     *store.DiaryStore
	prober    databaseProber
	dbURLSet  bool
	dbNameSet bool
	logger    *zap.Logger
}

type HandlerConfig struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

func NewHandler(profiles *store.ProfileStore, diary *store.DiaryStore, prober databaseProber, cfg HandlerConfig, logger *zap.Logger) *Handler {
	return &Handler{
		profiles:  profiles,
		diary:     diary,
		prober:    prober,
		dbURLSet:  cfg.DatabaseURLSet,
		dbNameSet: cfg.DatabaseNameSet,
		logger:    logger,
	}
}

// Root answers the liveness banner at /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio Backend Running"})
}

// GetProfile serves the one profile record, re-read from disk per request.
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Load()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, apierrors.NewNotFoundError("profile.json not found. Add it to the backend root."))
			return
		}
		respondError(c, apierrors.NewServerError(err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListDiary serves all diary entries in file order. A missing diary file is
// an empty list, not an error.
func (h *Handler) ListDiary(c *gin.Context) {
	items, err := h.diary.List()
	if err != nil {
		respondError(c, apierrors.NewServerError(err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetDiaryItem serves a single diary entry looked up by its id path param.
func (h *Handler) GetDiaryItem(c *gin.Context) {
	item, err := h.diary.Get(c.Param("item_id"))
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			respondError(c, apierrors.NewNotFoundError("Diary item not found"))
			return
		}
		respondError(c, apierrors.NewServerError(err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// Diagnostics reports backend, database, and environment status. It always
// answers 200; probe failures become descriptive marker strings.
func (h *Handler) Diagnostics(c *gin.Context) {
	status := h.prober.Probe(c.Request.Context())

	response := gin.H{
		"backend":           constants.Markers.BackendRunning,
		"database":          constants.Markers.DBNotAvailable,
		"database_url":      envMarker(h.dbURLSet),
		"database_name":     envMarker(h.dbNameSet),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	switch status.State {
	case database.StateAvailableNotInitialized:
		response["database"] = constants.Markers.DBNotInitialized
	case database.StateConnected:
		response["database"] = constants.Markers.DBConnectedWorking
		response["connection_status"] = "Connected"
		response["collections"] = status.Tables
	case database.StateConnectedWithError:
		response["database"] = constants.Markers.DBConnectedError + status.Detail
		response["connection_status"] = "Connected"
	}

	c.JSON(http.StatusOK, response)
}

func envMarker(set bool) string {
	if set {
		return constants.Markers.EnvSet
	}
	return constants.Markers.EnvNotSet
}

func respondError(c *gin.Context, err *apierrors.APIError) {
	c.JSON(err.StatusCode, gin.H{"detail": err.Message})
}
