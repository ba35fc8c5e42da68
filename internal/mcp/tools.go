// ABOUTME: MCP tool implementations for the lifelog store.
// ABOUTME: Provides logging, undo, stats, streak, and journal operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
	"github.com/harperreed/lifelog/internal/scoring"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_metric",
		Description: "Record a metric completion for a day at a performance level",
	}, s.handleLogMetric)

	// undo_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "undo_metric",
		Description: "Remove a metric completion for a day",
	}, s.handleUndoMetric)

	// log_performance
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_performance",
		Description: "Record a free performance with an explicit impact value",
	}, s.handleLogPerformance)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Compute score statistics for a domain or category over a day window",
	}, s.handleGetStats)

	// get_streak
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Get the current and maximum streak for a domain or category",
	}, s.handleGetStreak)

	// list_domains
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_domains",
		Description: "List all life domains",
	}, s.handleListDomains)

	// list_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_metrics",
		Description: "List metric definitions in a domain, optionally filtered by category",
	}, s.handleListMetrics)

	// add_journal_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_journal_entry",
		Description: "Add a dated journal entry",
	}, s.handleAddJournalEntry)
}

// Tool input/output types

type logMetricInput struct {
	Metric string   `json:"metric" jsonschema:"Metric name, ID, or ID prefix"`
	Level  string   `json:"level,omitempty" jsonschema:"Performance level (simple, advanced, exceptional), defaults to simple"`
	Impact *float64 `json:"impact,omitempty" jsonschema:"Custom impact override, replaces the level-derived impact entirely"`
	Date   string   `json:"date,omitempty" jsonschema:"Day to log (YYYY-MM-DD), defaults to today"`
}

type logMetricOutput struct {
	ID      string  `json:"id"`
	Metric  string  `json:"metric"`
	Date    string  `json:"date"`
	Impact  float64 `json:"impact"`
	Message string  `json:"message"`
}

type undoMetricInput struct {
	Metric string `json:"metric" jsonschema:"Metric name, ID, or ID prefix"`
	Date   string `json:"date,omitempty" jsonschema:"Day to undo (YYYY-MM-DD), defaults to today"`
}

type logPerformanceInput struct {
	Performance string  `json:"performance" jsonschema:"Free performance name, ID, or ID prefix"`
	Impact      float64 `json:"impact" jsonschema:"Impact value for this record (may be negative)"`
	Note        string  `json:"note,omitempty" jsonschema:"Optional note"`
	Date        string  `json:"date,omitempty" jsonschema:"Day to log (YYYY-MM-DD), defaults to today"`
}

type statsInput struct {
	Domain   string `json:"domain" jsonschema:"Domain name, ID, or ID prefix"`
	Category string `json:"category,omitempty" jsonschema:"Category name or ID to narrow the scope"`
	Days     int    `json:"days,omitempty" jsonschema:"Day window ending today (default 30)"`
	Scale    int    `json:"scale,omitempty" jsonschema:"Score ceiling: 100 (default) or 10"`
}

type statsOutput struct {
	Domain          string  `json:"domain"`
	Category        string  `json:"category,omitempty"`
	Days            int     `json:"days"`
	AvgRaw          float64 `json:"avg_raw"`
	FilledDays      int     `json:"filled_days"`
	FilledRate      float64 `json:"filled_rate"`
	NormalizedIndex float64 `json:"normalized_index"`
	Streak          int     `json:"streak"`
	MaxStreak       int     `json:"max_streak"`
	StreakBonus     float64 `json:"streak_bonus"`
	DisplayedScore  float64 `json:"displayed_score"`
}

type streakOutput struct {
	Domain    string `json:"domain"`
	Category  string `json:"category,omitempty"`
	Streak    int    `json:"streak"`
	MaxStreak int    `json:"max_streak"`
	Bonus     int    `json:"bonus"`
}

type listMetricsInput struct {
	Domain   string `json:"domain" jsonschema:"Domain name, ID, or ID prefix"`
	Category string `json:"category,omitempty" jsonschema:"Filter by category name or ID"`
	All      bool   `json:"all,omitempty" jsonschema:"Include deactivated metrics"`
}

type addJournalInput struct {
	Body string `json:"body" jsonschema:"Journal entry text"`
	Date string `json:"date,omitempty" jsonschema:"Entry day (YYYY-MM-DD), defaults to today"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// resolveDate parses an optional YYYY-MM-DD argument, defaulting to today.
func resolveDate(arg string) (string, error) {
	if arg == "" {
		return models.Day(time.Now()), nil
	}
	t, err := time.Parse(models.DayFormat, arg)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return t.Format(models.DayFormat), nil
}

// resolveScope turns domain/category references into a scoring scope.
func (s *Server) resolveScope(domainRef, categoryRef string) (*models.Domain, scoring.Scope, string, error) {
	d, err := s.repo.GetDomain(domainRef)
	if err != nil {
		return nil, scoring.Scope{}, "", fmt.Errorf("domain not found: %s", domainRef)
	}
	if categoryRef == "" {
		return d, scoring.DomainScope(d.ID), "", nil
	}
	c, err := s.repo.GetCategory(d.ID, categoryRef)
	if err != nil {
		return nil, scoring.Scope{}, "", fmt.Errorf("category not found: %s", categoryRef)
	}
	return d, scoring.CategoryScope(d.ID, c.ID), c.Name, nil
}

// computeStats runs the scoring pipeline for a scope over a day window.
func (s *Server) computeStats(domainID uuid.UUID, scope scoring.Scope, days int, cfg scoring.ScaleConfig) (scoring.Stats, error) {
	now := time.Now()
	dates := scoring.DateRange(now, days)
	start := dates[len(dates)-1]
	end := dates[0]

	events, err := s.repo.ListMetricEvents(domainID, start, end)
	if err != nil {
		return scoring.Stats{}, fmt.Errorf("failed to list events: %w", err)
	}
	perfs, err := s.repo.ListRecords(domainID, start, end)
	if err != nil {
		return scoring.Stats{}, fmt.Errorf("failed to list records: %w", err)
	}
	defs, err := s.repo.ListMetrics(domainID, nil, true)
	if err != nil {
		return scoring.Stats{}, fmt.Errorf("failed to list metrics: %w", err)
	}

	daily := scoring.DailyScores(scope, dates, events, perfs, defs)
	return scoring.ComputeStats(dates, daily, now, cfg), nil
}

// Tool handlers

func (s *Server) handleLogMetric(ctx context.Context, req *mcp.CallToolRequest, input logMetricInput) (*mcp.CallToolResult, logMetricOutput, error) {
	m, err := s.repo.GetMetric(input.Metric)
	if err != nil {
		return nil, logMetricOutput{}, fmt.Errorf("metric not found: %s", input.Metric)
	}

	level := models.LevelSimple
	if input.Level != "" {
		if !models.IsValidPerformanceLevel(input.Level) {
			return nil, logMetricOutput{}, fmt.Errorf("unknown performance level: %s", input.Level)
		}
		level = models.PerformanceLevel(input.Level)
	}

	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, logMetricOutput{}, err
	}

	ev := models.NewMetricEvent(m, date, level)
	if input.Impact != nil {
		ev.WithCustomImpact(*input.Impact)
	}

	if err := s.repo.RecordMetricEvent(ev); err != nil {
		return nil, logMetricOutput{}, fmt.Errorf("failed to record event: %w", err)
	}

	impact := scoring.ResolveImpact(ev, m)
	return nil, logMetricOutput{
		ID:      ev.ID.String()[:8],
		Metric:  m.Name,
		Date:    date,
		Impact:  impact,
		Message: fmt.Sprintf("Logged %s on %s (%+.0f)", m.Name, date, impact),
	}, nil
}

func (s *Server) handleUndoMetric(ctx context.Context, req *mcp.CallToolRequest, input undoMetricInput) (*mcp.CallToolResult, simpleOutput, error) {
	m, err := s.repo.GetMetric(input.Metric)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("metric not found: %s", input.Metric)
	}

	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.DeleteMetricEventByDay(m.ID, date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to undo: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Removed %s on %s", m.Name, date),
	}, nil
}

func (s *Server) handleLogPerformance(ctx context.Context, req *mcp.CallToolRequest, input logPerformanceInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.repo.GetFreePerformance(input.Performance)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("performance not found: %s", input.Performance)
	}

	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	r := models.NewFreePerformanceRecord(p, date, input.Impact)
	if input.Note != "" {
		r.WithNote(input.Note)
	}

	if err := s.repo.CreateRecord(r); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create record: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s on %s (%+.1f)", p.Name, date, input.Impact),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input statsInput) (*mcp.CallToolResult, statsOutput, error) {
	d, scope, categoryName, err := s.resolveScope(input.Domain, input.Category)
	if err != nil {
		return nil, statsOutput{}, err
	}

	days := input.Days
	if days <= 0 {
		days = 30
	}

	cfg := scoring.DefaultScale()
	if input.Scale == 10 {
		cfg = scoring.SummaryScale()
	}

	stats, err := s.computeStats(d.ID, scope, days, cfg)
	if err != nil {
		return nil, statsOutput{}, err
	}

	return nil, statsOutput{
		Domain:          d.Name,
		Category:        categoryName,
		Days:            days,
		AvgRaw:          stats.AvgRaw,
		FilledDays:      stats.FilledDays,
		FilledRate:      stats.FilledRate,
		NormalizedIndex: stats.NormalizedIndex,
		Streak:          stats.Streak,
		MaxStreak:       stats.MaxStreak,
		StreakBonus:     stats.StreakBonus,
		DisplayedScore:  stats.DisplayedScore,
	}, nil
}

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input statsInput) (*mcp.CallToolResult, streakOutput, error) {
	d, scope, categoryName, err := s.resolveScope(input.Domain, input.Category)
	if err != nil {
		return nil, streakOutput{}, err
	}

	days := input.Days
	if days <= 0 {
		days = 365
	}

	stats, err := s.computeStats(d.ID, scope, days, scoring.DefaultScale())
	if err != nil {
		return nil, streakOutput{}, err
	}

	return nil, streakOutput{
		Domain:    d.Name,
		Category:  categoryName,
		Streak:    stats.Streak,
		MaxStreak: stats.MaxStreak,
		Bonus:     scoring.StreakBonus(stats.Streak),
	}, nil
}

func (s *Server) handleListDomains(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	domains, err := s.repo.ListDomains()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list domains: %w", err)
	}

	if len(domains) == 0 {
		return nil, map[string]interface{}{"message": "No domains found."}, nil
	}

	return nil, domains, nil
}

func (s *Server) handleListMetrics(ctx context.Context, req *mcp.CallToolRequest, input listMetricsInput) (*mcp.CallToolResult, any, error) {
	d, err := s.repo.GetDomain(input.Domain)
	if err != nil {
		return nil, nil, fmt.Errorf("domain not found: %s", input.Domain)
	}

	var categoryID *uuid.UUID
	if input.Category != "" {
		c, err := s.repo.GetCategory(d.ID, input.Category)
		if err != nil {
			return nil, nil, fmt.Errorf("category not found: %s", input.Category)
		}
		categoryID = &c.ID
	}

	metrics, err := s.repo.ListMetrics(d.ID, categoryID, input.All)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	if len(metrics) == 0 {
		return nil, map[string]interface{}{"message": "No metrics found."}, nil
	}

	return nil, metrics, nil
}

func (s *Server) handleAddJournalEntry(ctx context.Context, req *mcp.CallToolRequest, input addJournalInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Body == "" {
		return nil, simpleOutput{}, fmt.Errorf("journal entry body is required")
	}

	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	e := models.NewJournalEntry(date, input.Body)
	if err := s.repo.CreateJournalEntry(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added journal entry for %s (ID: %s)", date, e.ID.String()[:8]),
	}, nil
}
