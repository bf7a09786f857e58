// Package agent hosts the orchestration loop: it hands the tool catalog to
// the planner, executes the tool calls the planner asks for, and feeds the
// results back until the planner produces a final textual answer or the
// iteration bound runs out.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SuedePritch/auditagents/internal/planner"
	"github.com/SuedePritch/auditagents/internal/tools"
)

// DefaultMaxRounds bounds the number of tool-call rounds per instruction.
// The planner is non-deterministic; without a bound a confused model could
// loop forever.
const DefaultMaxRounds = 15

// exhaustedAnswer is returned when the bound runs out and the planner never
// produced any text.
const exhaustedAnswer = "The audit could not be completed within the allowed " +
	"number of tool-call rounds. Partial results may have been recorded; " +
	"check the system status for emails sent and tasks scheduled."

// Agent runs natural-language audit instructions against the tool catalog.
type Agent struct {
	provider  planner.Provider
	registry  *tools.Registry
	maxRounds int
	now       func() time.Time
}

// New builds an agent. maxRounds <= 0 selects DefaultMaxRounds.
func New(provider planner.Provider, registry *tools.Registry, maxRounds int) *Agent {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Agent{
		provider:  provider,
		registry:  registry,
		maxRounds: maxRounds,
		now:       time.Now,
	}
}

// Run executes one instruction to completion. Tool execution failures and
// malformed planner calls are reported back to the planner as observations;
// only planner transport failures surface as errors.
func (a *Agent) Run(ctx context.Context, instruction string) (string, error) {
	runID := uuid.NewString()
	log := slog.With("run_id", runID, "provider", a.provider.Name())
	log.Info("instruction received", "instruction", instruction)

	session, err := a.provider.NewSession(ctx, SystemPrompt(a.now()), a.registry.Declarations())
	if err != nil {
		return "", fmt.Errorf("start planner session: %w", err)
	}

	turn, err := session.Send(ctx, instruction)
	if err != nil {
		return "", fmt.Errorf("send instruction: %w", err)
	}

	var lastText string
	for round := 1; ; round++ {
		if turn.Text != "" {
			lastText = turn.Text
		}
		if len(turn.Calls) == 0 {
			log.Info("instruction complete", "rounds", round-1)
			return lastText, nil
		}
		if round > a.maxRounds {
			log.Warn("iteration bound exhausted", "max_rounds", a.maxRounds)
			if lastText != "" {
				return lastText, nil
			}
			return exhaustedAnswer, nil
		}

		plannerRounds.Inc()
		results := make([]planner.ToolResult, 0, len(turn.Calls))
		for _, call := range turn.Calls {
			results = append(results, a.execute(ctx, log, call))
		}

		turn, err = session.Reply(ctx, results)
		if err != nil {
			return lastText, fmt.Errorf("send tool results: %w", err)
		}
	}
}

// execute dispatches a single call. Any failure becomes an observation the
// planner can react to in the next round; nothing here ends the session.
func (a *Agent) execute(ctx context.Context, log *slog.Logger, call planner.ToolCall) planner.ToolResult {
	out, err := a.registry.Dispatch(ctx, call)
	if err != nil {
		log.Warn("tool call rejected", "tool", call.Name, "error", err)
		return planner.ToolResult{
			Name:     call.Name,
			Response: map[string]any{"error": err.Error()},
		}
	}
	log.Info("tool call handled", "tool", call.Name)
	return planner.ToolResult{
		Name:     call.Name,
		Response: map[string]any{"result": out},
	}
}
