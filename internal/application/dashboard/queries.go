package dashboard

import (
	"context"
	"strings"

	"github.com/reachlab/geodash/internal/domain/campaign"
	"github.com/reachlab/geodash/internal/domain/store"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
	"github.com/reachlab/geodash/pkg/types/geo"
)

// Neutral style for areas with no matched (or no selected) campaign data.
// Active areas get the dominant vendor's color and a dark border.
const (
	neutralFillColor   = "#f0f0f0"
	neutralFillOpacity = 0.3
	neutralBorderColor = "#cccccc"
	activeBorderColor  = "#333333"
)

// AreaStyle is the renderable style of one postal area under a selection.
type AreaStyle struct {
	AreaCode          string        `json:"area_code"`
	Matched           bool          `json:"matched"`
	FillColor         string        `json:"fill_color"`
	FillOpacity       float64       `json:"fill_opacity"`
	BorderColor       string        `json:"border_color"`
	Overlap           bool          `json:"overlap"`
	LowPerformer      bool          `json:"low_performer"`
	DominantVendor    string        `json:"dominant_vendor,omitempty"`
	AdditionalVendors []string      `json:"additional_vendors,omitempty"`
	Efficiency        float64       `json:"efficiency"`
	Tier              campaign.Tier `json:"tier,omitempty"`
}

// AreaDetail is the full per-area answer behind the popup view.
type AreaDetail struct {
	AreaCode           string                  `json:"area_code"`
	Records            []campaign.VendorRecord `json:"records"`
	CombinedEfficiency float64                 `json:"combined_efficiency"`
	Tier               campaign.Tier           `json:"tier,omitempty"`
	DominantVendor     *campaign.VendorRecord  `json:"dominant_vendor,omitempty"`
	AdditionalVendors  []campaign.VendorRecord `json:"additional_vendors,omitempty"`
	Overlap            bool                    `json:"overlap"`
}

// VendorInfo pairs a vendor with its assigned palette color.
type VendorInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// VendorSummary is the per-vendor block of the legend.
type VendorSummary struct {
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	AreaCount     int     `json:"area_count"`
	AvgEfficiency float64 `json:"avg_efficiency"`
}

// Legend aggregates what the dashboard legend displays for a selection.
type Legend struct {
	AreaCount  int             `json:"area_count"`
	TierLow    int             `json:"tier_low"`
	TierMedium int             `json:"tier_medium"`
	TierHigh   int             `json:"tier_high"`
	Vendors    []VendorSummary `json:"vendors"`
	StoreCount int             `json:"store_count"`
}

// ParseSelection interprets the vendor filter of a request. Absent or "all"
// selects every vendor, "none" selects nothing, anything else is a
// comma-separated vendor list.
func ParseSelection(raw string) campaign.Selection {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "all":
		return campaign.SelectAll()
	case "none":
		return campaign.SelectNone()
	}
	return campaign.SelectVendors(strings.Split(raw, ",")...)
}

// AreaDetail answers the per-area query. Unknown areas return an empty
// detail, not an error.
func (s *Service) AreaDetail(_ context.Context, code string, sel campaign.Selection) (*AreaDetail, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	records := snap.Index.RelevantVendors(code, sel)
	detail := &AreaDetail{AreaCode: code, Records: records}
	if len(records) == 0 {
		return detail, nil
	}

	detail.CombinedEfficiency = campaign.WeightedEfficiency(records)
	detail.Tier = campaign.TierOf(detail.CombinedEfficiency)
	detail.DominantVendor = campaign.DominantVendor(records)
	detail.AdditionalVendors = campaign.AdditionalVendors(records, detail.DominantVendor)
	detail.Overlap = len(records) > 1
	return detail, nil
}

// AreaStyle resolves the renderable style of one area, consulting the
// response cache when one is attached.
func (s *Service) AreaStyle(ctx context.Context, code string, sel campaign.Selection) (AreaStyle, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return AreaStyle{}, err
	}
	if s.cache == nil {
		return computeStyle(snap, code, sel), nil
	}

	key := styleCachePrefix + snap.Version + ":" + code + ":" + sel.Key()
	var style AreaStyle
	if err := s.cache.Get(ctx, key, &style); err == nil {
		s.metrics.CacheHitsTotal.WithLabelValues("style").Inc()
		return style, nil
	}
	s.metrics.CacheMissesTotal.WithLabelValues("style").Inc()

	style = computeStyle(snap, code, sel)
	if err := s.cache.Set(ctx, key, style, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache area style", logging.String("area", code), logging.Err(err))
	}
	return style, nil
}

// Styles computes the style of every indexed area under the selection, the
// bulk form used to paint the whole choropleth in one request.
func (s *Service) Styles(_ context.Context, sel campaign.Selection) ([]AreaStyle, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	areas := snap.Index.Areas()
	styles := make([]AreaStyle, 0, len(areas))
	for _, code := range areas {
		styles = append(styles, computeStyle(snap, code, sel))
	}
	return styles, nil
}

func computeStyle(snap *Snapshot, code string, sel campaign.Selection) AreaStyle {
	records := snap.Index.RelevantVendors(code, sel)
	if len(records) == 0 {
		return AreaStyle{
			AreaCode:    code,
			FillColor:   neutralFillColor,
			FillOpacity: neutralFillOpacity,
			BorderColor: neutralBorderColor,
		}
	}

	efficiency := campaign.WeightedEfficiency(records)
	tier := campaign.TierOf(efficiency)
	dominant := campaign.DominantVendor(records)

	style := AreaStyle{
		AreaCode:       code,
		Matched:        true,
		FillColor:      campaign.ColorFor(dominant.Vendor, snap.Catalog),
		FillOpacity:    campaign.VisualIntensity(efficiency),
		BorderColor:    activeBorderColor,
		Overlap:        len(records) > 1,
		LowPerformer:   tier == campaign.TierLow,
		DominantVendor: dominant.Vendor,
		Efficiency:     efficiency,
		Tier:           tier,
	}
	for _, r := range campaign.AdditionalVendors(records, dominant) {
		style.AdditionalVendors = append(style.AdditionalVendors, r.Vendor)
	}
	return style
}

// Vendors lists the catalog with assigned colors.
func (s *Service) Vendors(_ context.Context) ([]VendorInfo, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	vendors := make([]VendorInfo, 0, len(snap.Catalog))
	for _, name := range snap.Catalog {
		vendors = append(vendors, VendorInfo{
			Name:  name,
			Color: campaign.ColorFor(name, snap.Catalog),
		})
	}
	return vendors, nil
}

// Legend computes the selection-relative aggregates shown in the legend.
func (s *Service) Legend(_ context.Context, sel campaign.Selection) (*Legend, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	legend := &Legend{StoreCount: len(snap.Stores)}

	vendorAreas := make(map[string]int)
	vendorEffSum := make(map[string]float64)
	vendorRecords := make(map[string]int)

	for _, code := range snap.Index.Areas() {
		records := snap.Index.RelevantVendors(code, sel)
		if len(records) == 0 {
			continue
		}
		legend.AreaCount++
		switch campaign.TierOf(campaign.WeightedEfficiency(records)) {
		case campaign.TierLow:
			legend.TierLow++
		case campaign.TierMedium:
			legend.TierMedium++
		case campaign.TierHigh:
			legend.TierHigh++
		}
		for _, r := range records {
			vendorAreas[r.Vendor]++
			vendorEffSum[r.Vendor] += r.Efficiency
			vendorRecords[r.Vendor]++
		}
	}

	for _, name := range snap.Catalog {
		if !sel.Contains(name) {
			continue
		}
		summary := VendorSummary{
			Name:      name,
			Color:     campaign.ColorFor(name, snap.Catalog),
			AreaCount: vendorAreas[name],
		}
		if n := vendorRecords[name]; n > 0 {
			summary.AvgEfficiency = vendorEffSum[name] / float64(n)
		}
		legend.Vendors = append(legend.Vendors, summary)
	}
	return legend, nil
}

// Stores returns the normalized store locations of the snapshot.
func (s *Service) Stores(_ context.Context) ([]store.Location, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Stores, nil
}

// Boundaries returns the merged boundary collection for the renderer.
func (s *Service) Boundaries(_ context.Context) (geo.FeatureCollection, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return geo.FeatureCollection{}, err
	}
	return snap.Boundaries, nil
}
