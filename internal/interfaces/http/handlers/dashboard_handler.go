package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reachlab/geodash/internal/application/dashboard"
)

// vendorsParam is the query parameter carrying the vendor selection:
// absent or "all" selects every vendor, "none" selects nothing, otherwise a
// comma-separated vendor list.
const vendorsParam = "vendors"

// DashboardHandler serves the dashboard query endpoints.
type DashboardHandler struct {
	svc *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// SnapshotMeta is the snapshot metadata document.
type SnapshotMeta struct {
	Version     string                `json:"version"`
	BuiltAt     time.Time             `json:"built_at"`
	Areas       int                   `json:"areas"`
	Vendors     int                   `json:"vendors"`
	Stores      int                   `json:"stores"`
	Boundaries  int                   `json:"boundaries"`
	MapDefaults dashboard.MapDefaults `json:"map_defaults"`
}

// GetSnapshot returns metadata about the published snapshot.
func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	snap, err := h.svc.Snapshot()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SnapshotMeta{
		Version:     snap.Version,
		BuiltAt:     snap.BuiltAt,
		Areas:       len(snap.Index),
		Vendors:     len(snap.Catalog),
		Stores:      len(snap.Stores),
		Boundaries:  len(snap.Boundaries.Features),
		MapDefaults: h.svc.MapDefaults(),
	})
}

// ListVendors returns the vendor catalog with assigned colors.
func (h *DashboardHandler) ListVendors(c *gin.Context) {
	vendors, err := h.svc.Vendors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GetArea returns the detail view of one postal area.
func (h *DashboardHandler) GetArea(c *gin.Context) {
	sel := dashboard.ParseSelection(c.Query(vendorsParam))
	detail, err := h.svc.AreaDetail(c.Request.Context(), c.Param("code"), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetAreaStyle returns the renderable style of one postal area.
func (h *DashboardHandler) GetAreaStyle(c *gin.Context) {
	sel := dashboard.ParseSelection(c.Query(vendorsParam))
	style, err := h.svc.AreaStyle(c.Request.Context(), c.Param("code"), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, style)
}

// ListStyles returns the styles of every indexed area.
func (h *DashboardHandler) ListStyles(c *gin.Context) {
	sel := dashboard.ParseSelection(c.Query(vendorsParam))
	styles, err := h.svc.Styles(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"styles": styles})
}

// GetLegend returns the legend aggregates for the selection.
func (h *DashboardHandler) GetLegend(c *gin.Context) {
	sel := dashboard.ParseSelection(c.Query(vendorsParam))
	legend, err := h.svc.Legend(c.Request.Context(), sel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, legend)
}

// ListStores returns the normalized store locations.
func (h *DashboardHandler) ListStores(c *gin.Context) {
	stores, err := h.svc.Stores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

// GetBoundaries returns the merged boundary FeatureCollection.
func (h *DashboardHandler) GetBoundaries(c *gin.Context) {
	fc, err := h.svc.Boundaries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

// Refresh rebuilds the snapshot from the dataset sources.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	snap, err := h.svc.Refresh(c.Request.Context(), dashboard.TriggerManual)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"version":  snap.Version,
		"built_at": snap.BuiltAt,
	})
}
