// ABOUTME: MCP resource implementations for the lifelog store.
// ABOUTME: Provides lifelog://dashboard and lifelog://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lifelog/internal/models"
	"github.com/harperreed/lifelog/internal/scoring"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dashboardDays = 30

func (s *Server) registerResources() {
	// lifelog://dashboard - Per-domain stats over the last 30 days
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifelog://dashboard",
		Name:        "Lifelog Dashboard",
		Description: "Score, streak, and fill rate for every domain over the last 30 days",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// lifelog://today - Everything logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifelog://today",
		Name:        "Today's Log",
		Description: "All metric events and performance records logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	domains, err := s.repo.ListDomains()
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	entries := make([]map[string]interface{}, 0, len(domains))
	for _, d := range domains {
		stats, err := s.computeStats(d.ID, scoring.DomainScope(d.ID), dashboardDays, scoring.DefaultScale())
		if err != nil {
			return nil, fmt.Errorf("failed to compute stats for %s: %w", d.Name, err)
		}

		entries = append(entries, map[string]interface{}{
			"domain":           d.Name,
			"displayed_score":  stats.DisplayedScore,
			"normalized_index": stats.NormalizedIndex,
			"avg_raw":          stats.AvgRaw,
			"filled_days":      stats.FilledDays,
			"total_days":       stats.TotalDays,
			"filled_rate":      stats.FilledRate,
			"streak":           stats.Streak,
			"max_streak":       stats.MaxStreak,
			"streak_bonus":     stats.StreakBonus,
		})
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"window_days":  dashboardDays,
		"domains":      entries,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lifelog://dashboard",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Day(time.Now())

	domains, err := s.repo.ListDomains()
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	var events []*models.MetricEvent
	var records []*models.FreePerformanceRecord
	for _, d := range domains {
		evs, err := s.repo.ListMetricEvents(d.ID, today, today)
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		events = append(events, evs...)

		recs, err := s.repo.ListRecords(d.ID, today, today)
		if err != nil {
			return nil, fmt.Errorf("failed to list records: %w", err)
		}
		records = append(records, recs...)
	}

	result := map[string]interface{}{
		"date":    today,
		"events":  events,
		"records": records,
		"counts": map[string]int{
			"events":  len(events),
			"records": len(records),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lifelog://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
