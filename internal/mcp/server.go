// Package mcp exposes the RaptorFlow planner as MCP (Model Context Protocol)
// tools so assistants can draft, launch and track Moves.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/raptorflow/internal/core"
	"github.com/valter-silva-au/raptorflow/internal/observability"
	"github.com/valter-silva-au/raptorflow/pkg/models"
)

// Defaults fill plan fields a tool call leaves empty.
type Defaults struct {
	Audience       string
	TimeCommitment models.TimeCommitment
	Duration       int
}

// Server wraps the planner services and exposes them as MCP tools.
type Server struct {
	server      *gomcp.Server
	moveMgr     core.MoveManager
	metricsCalc observability.MetricsCalculator
	defaults    Defaults
}

// NewServer creates an MCP server. moveMgr and metricsCalc may be nil; the
// tools needing them then report an error result.
func NewServer(moveMgr core.MoveManager, metricsCalc observability.MetricsCalculator, defaults Defaults, version string) *Server {
	if version == "" {
		version = "dev"
	}
	s := &Server{
		moveMgr:     moveMgr,
		metricsCalc: metricsCalc,
		defaults:    defaults,
	}
	s.server = gomcp.NewServer(&gomcp.Implementation{Name: "rf", Version: version}, nil)
	s.registerTools()
	return s
}

// Run serves on stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listCategoriesInput struct{}

type categoryOutput struct {
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	DefaultGoal string   `json:"default_goal"`
	Tone        string   `json:"tone"`
	Metrics     []string `json:"metrics"`
}

type listCategoriesOutput struct {
	Categories []categoryOutput `json:"categories"`
}

type planInput struct {
	Category       string `json:"category" jsonschema:"the Move category: ignite, capture, authority, repair or rally"`
	Context        string `json:"context" jsonschema:"free-text description of the situation the Move addresses"`
	Audience       string `json:"audience,omitempty" jsonschema:"target audience name. Defaults to the workspace default or General Audience."`
	TimeCommitment string `json:"time_commitment,omitempty" jsonschema:"daily effort: 15m, 30m or 1h+"`
	Outcome        string `json:"outcome,omitempty" jsonschema:"the measurable result the Move should produce"`
	Offer          string `json:"offer,omitempty" jsonschema:"what is being offered to the audience"`
	Resistance     string `json:"resistance,omitempty" jsonschema:"the objection the audience is expected to raise"`
	Duration       int    `json:"duration,omitempty" jsonschema:"plan length in days (1-28). Defaults to 7."`
}

type planOutput struct {
	Brief     models.Brief          `json:"brief"`
	Execution []models.ExecutionDay `json:"execution"`
}

type launchMoveOutput struct {
	MoveID  string `json:"move_id"`
	Message string `json:"message"`
	Days    int    `json:"days"`
	Tasks   int    `json:"tasks"`
}

type listMovesInput struct {
	Category string `json:"category,omitempty" jsonschema:"only list Moves of this category"`
}

type moveSummary struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Source   string `json:"source,omitempty"`
	Done     int    `json:"done"`
	Total    int    `json:"total"`
	Created  string `json:"created"`
}

type listMovesOutput struct {
	Moves []moveSummary `json:"moves"`
	Count int           `json:"count"`
}

type toggleTaskInput struct {
	MoveID string `json:"move_id" jsonschema:"the Move identifier"`
	TaskID string `json:"task_id" jsonschema:"the task identifier, e.g. pillar-1, cluster-2-1 or network-3"`
}

type toggleTaskOutput struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Done    int    `json:"done"`
	Total   int    `json:"total"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	MovesLaunched    int            `json:"moves_launched"`
	MovesByCategory  map[string]int `json:"moves_by_category"`
	TasksCompleted   int            `json:"tasks_completed"`
	TasksReopened    int            `json:"tasks_reopened"`
	SamplesGenerated int            `json:"samples_generated"`
	PlannedDays      int            `json:"planned_days"`
	EventCount       int            `json:"event_count"`
	OldestEvent      string         `json:"oldest_event,omitempty"`
	NewestEvent      string         `json:"newest_event,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_categories",
		Description: "List the five Move categories with their names, taglines, default goals, tones and metrics.",
	}, s.handleListCategories)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "synthesize_move",
		Description: "Draft a Move brief and day-by-day execution plan without saving it.",
	}, s.handleSynthesizeMove)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "launch_move",
		Description: "Draft a Move and save it so its tasks can be tracked.",
	}, s.handleLaunchMove)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_moves",
		Description: "List launched Moves with their task progress, optionally filtered by category.",
	}, s.handleListMoves)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "toggle_task",
		Description: "Flip a task of a launched Move between pending and done.",
	}, s.handleToggleTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get planning metrics from the event log: Moves launched by category, task completions and samples generated.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleListCategories(_ context.Context, _ *gomcp.CallToolRequest, _ listCategoriesInput) (*gomcp.CallToolResult, listCategoriesOutput, error) {
	profiles := core.Profiles()
	out := listCategoriesOutput{Categories: make([]categoryOutput, len(profiles))}
	for i, p := range profiles {
		out.Categories[i] = categoryOutput{
			Category:    string(p.Category),
			Name:        p.Name,
			Tagline:     p.Tagline,
			DefaultGoal: p.DefaultGoal,
			Tone:        p.Tone,
			Metrics:     p.Metrics[:],
		}
	}
	return nil, out, nil
}

func (s *Server) handleSynthesizeMove(_ context.Context, _ *gomcp.CallToolRequest, input planInput) (*gomcp.CallToolResult, planOutput, error) {
	in, err := s.toPlanInput(input)
	if err != nil {
		return errorResult(err.Error()), emptyPlanOutput(), nil
	}
	out, err := synthesize(in)
	if err != nil {
		return errorResult(fmt.Sprintf("synthesizing move: %s", err)), emptyPlanOutput(), nil
	}
	return nil, out, nil
}

func (s *Server) handleLaunchMove(_ context.Context, _ *gomcp.CallToolRequest, input planInput) (*gomcp.CallToolResult, launchMoveOutput, error) {
	if s.moveMgr == nil {
		return errorResult("move manager not available"), launchMoveOutput{}, nil
	}
	in, err := s.toPlanInput(input)
	if err != nil {
		return errorResult(err.Error()), launchMoveOutput{}, nil
	}
	plan, err := synthesize(in)
	if err != nil {
		return errorResult(fmt.Sprintf("synthesizing move: %s", err)), launchMoveOutput{}, nil
	}

	move, err := s.moveMgr.Launch(models.SourceMCP, in.Category, in.Context, plan.Brief, plan.Execution)
	if err != nil {
		return errorResult(fmt.Sprintf("launching move: %s", err)), launchMoveOutput{}, nil
	}
	_, total := move.Progress()
	return nil, launchMoveOutput{
		MoveID:  move.ID,
		Message: fmt.Sprintf("launched %q (%s, %d days)", move.Brief.Name, move.Category, len(move.Execution)),
		Days:    len(move.Execution),
		Tasks:   total,
	}, nil
}

func (s *Server) handleListMoves(_ context.Context, _ *gomcp.CallToolRequest, input listMovesInput) (*gomcp.CallToolResult, listMovesOutput, error) {
	empty := listMovesOutput{Moves: []moveSummary{}}
	if s.moveMgr == nil {
		return errorResult("move manager not available"), empty, nil
	}

	var filter core.MoveFilter
	if input.Category != "" {
		c, err := models.ParseCategory(input.Category)
		if err != nil {
			return errorResult(err.Error()), empty, nil
		}
		filter.Category = c
	}

	moves, err := s.moveMgr.ListMoves(filter)
	if err != nil {
		return errorResult(fmt.Sprintf("listing moves: %s", err)), empty, nil
	}

	out := listMovesOutput{Moves: make([]moveSummary, len(moves)), Count: len(moves)}
	for i := range moves {
		done, total := moves[i].Progress()
		out.Moves[i] = moveSummary{
			ID:       moves[i].ID,
			Category: string(moves[i].Category),
			Name:     moves[i].Brief.Name,
			Source:   moves[i].Source,
			Done:     done,
			Total:    total,
			Created:  moves[i].Created.Format(time.RFC3339),
		}
	}
	return nil, out, nil
}

func (s *Server) handleToggleTask(_ context.Context, _ *gomcp.CallToolRequest, input toggleTaskInput) (*gomcp.CallToolResult, toggleTaskOutput, error) {
	if s.moveMgr == nil {
		return errorResult("move manager not available"), toggleTaskOutput{}, nil
	}
	if input.MoveID == "" {
		return errorResult("move_id is required"), toggleTaskOutput{}, nil
	}
	if input.TaskID == "" {
		return errorResult("task_id is required"), toggleTaskOutput{}, nil
	}

	move, err := s.moveMgr.ToggleTask(input.MoveID, input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("toggling task %s: %s", input.TaskID, err)), toggleTaskOutput{}, nil
	}

	status := taskStatus(move, input.TaskID)
	done, total := move.Progress()
	return nil, toggleTaskOutput{
		Message: fmt.Sprintf("task %s is now %s", input.TaskID, status),
		Status:  string(status),
		Done:    done,
		Total:   total,
	}, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available"), emptyMetricsOutput(), nil
	}

	since, err := observability.ParseSince(input.Since, time.Now().UTC())
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}
	metrics, err := s.metricsCalc.Calculate(since)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		MovesLaunched:    metrics.MovesLaunched,
		MovesByCategory:  metrics.MovesByCategory,
		TasksCompleted:   metrics.TasksCompleted,
		TasksReopened:    metrics.TasksReopened,
		SamplesGenerated: metrics.SamplesGenerated,
		PlannedDays:      metrics.PlannedDays,
		EventCount:       metrics.EventCount,
	}
	if out.MovesByCategory == nil {
		out.MovesByCategory = make(map[string]int)
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}
	return nil, out, nil
}

// --- Helpers ---

func (s *Server) toPlanInput(input planInput) (core.PlanInput, error) {
	if input.Category == "" {
		return core.PlanInput{}, fmt.Errorf("category is required")
	}
	category, err := models.ParseCategory(input.Category)
	if err != nil {
		return core.PlanInput{}, err
	}

	tc := s.defaults.TimeCommitment
	if input.TimeCommitment != "" {
		if tc, err = models.ParseTimeCommitment(input.TimeCommitment); err != nil {
			return core.PlanInput{}, err
		}
	}

	duration := s.defaults.Duration
	if input.Duration != 0 {
		duration = input.Duration
	}
	if duration < 0 || duration > core.MaxDuration {
		return core.PlanInput{}, fmt.Errorf("duration must be between 1 and %d, got %d", core.MaxDuration, duration)
	}

	audience := input.Audience
	if audience == "" {
		audience = s.defaults.Audience
	}

	return core.PlanInput{
		Category:     category,
		Context:      input.Context,
		AudienceName: audience,
		Answers: models.Answers{
			Outcome:    input.Outcome,
			Offer:      input.Offer,
			Resistance: input.Resistance,
		},
		TimeCommitment: tc,
		Duration:       duration,
	}, nil
}

func synthesize(in core.PlanInput) (planOutput, error) {
	brief, err := core.SynthesizeBrief(in)
	if err != nil {
		return planOutput{}, err
	}
	days, err := core.SynthesizeExecutionPlan(brief, in)
	if err != nil {
		return planOutput{}, err
	}
	return planOutput{Brief: brief, Execution: days}, nil
}

func taskStatus(move *models.Move, taskID string) models.TaskStatus {
	for i := range move.Execution {
		for _, t := range move.Execution[i].Tasks() {
			if t.ID == taskID {
				return t.Status
			}
		}
	}
	return ""
}

func emptyPlanOutput() planOutput {
	return planOutput{Brief: models.Brief{Metrics: []string{}}, Execution: []models.ExecutionDay{}}
}

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{MovesByCategory: make(map[string]int)}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
