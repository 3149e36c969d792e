package advisor

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"github.com/mattrebelskey/IFS-app/internal/engine"
)

// Advisor produces short supportive texts. The model is optional; every
// method degrades to a built-in response, so callers never see an error.
type Advisor struct {
	model  llms.Model
	logger *zap.SugaredLogger
}

// New builds an advisor backed by an OpenAI-compatible endpoint. An
// empty apiKey disables the model entirely.
func New(apiKey, endpoint, model string, logger *zap.SugaredLogger) *Advisor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if apiKey == "" {
		return &Advisor{logger: logger}
	}
	opts := []openai.Option{openai.WithToken(apiKey)}
	if endpoint != "" {
		opts = append(opts, openai.WithBaseURL(endpoint))
	}
	if model != "" {
		opts = append(opts, openai.WithModel(model))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		logger.Warnw("advisor model unavailable, using built-in responses", "error", err)
		return &Advisor{logger: logger}
	}
	return &Advisor{model: llm, logger: logger}
}

// NewWithModel wires an already-built model.
func NewWithModel(model llms.Model, logger *zap.SugaredLogger) *Advisor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Advisor{model: model, logger: logger}
}

// GenerateEncouragement returns a one-or-two sentence compassionate
// message reflecting the user's recent activity.
func (a *Advisor) GenerateEncouragement(ctx context.Context, state *engine.AppState) string {
	if a.model == nil {
		return compassionQuotes[rand.Intn(len(compassionQuotes))]
	}
	prompt := fmt.Sprintf(
		"You are a gentle self-care companion informed by Internal Family Systems. "+
			"The user %s is at level %s with %d lifetime XP and a best streak of %d days. "+
			"Write one or two short sentences of warm, non-judgmental encouragement. "+
			"No advice, no exclamation marks, no emoji.",
		state.Settings.Name, state.CurrentLevel, state.TotalXP, engine.MaxStreak(state.DailyHistory),
	)
	out, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt, llms.WithTemperature(0.7))
	if err != nil {
		a.logger.Warnw("encouragement generation failed", "error", err)
		return compassionQuotes[rand.Intn(len(compassionQuotes))]
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return compassionQuotes[rand.Intn(len(compassionQuotes))]
	}
	return out
}

// SuggestMicroTasks returns exactly three tiny tasks doable in under
// two minutes, tuned to the stated mood.
func (a *Advisor) SuggestMicroTasks(ctx context.Context, mood string) []string {
	if a.model == nil {
		return append([]string(nil), fallbackMicroTasks...)
	}
	prompt := fmt.Sprintf(
		"Suggest exactly 3 micro self-care tasks for someone feeling %q. "+
			"Each must take under two minutes and need no equipment. "+
			"Reply with one task per line, no numbering, no extra text.",
		mood,
	)
	out, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt, llms.WithTemperature(0.7))
	if err != nil {
		a.logger.Warnw("micro-task generation failed", "error", err)
		return append([]string(nil), fallbackMicroTasks...)
	}
	tasks := parseTaskLines(out)
	// Pad short replies so callers always get three.
	for i := len(tasks); i < 3; i++ {
		tasks = append(tasks, fallbackMicroTasks[i])
	}
	return tasks[:3]
}

// SuggestHabitStack returns an implementation-intention sentence of the
// form "After I <cue>, I will <action>".
func (a *Advisor) SuggestHabitStack(ctx context.Context, cue string) string {
	if a.model == nil {
		return fallbackHabitStack(cue)
	}
	prompt := fmt.Sprintf(
		"Complete this habit stack with one tiny, concrete self-care action: "+
			"\"After I %s, I will ...\". Reply with the full sentence only.",
		cue,
	)
	out, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt, llms.WithTemperature(0.7))
	if err != nil {
		a.logger.Warnw("habit stack generation failed", "error", err)
		return fallbackHabitStack(cue)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return fallbackHabitStack(cue)
	}
	return out
}

// parseTaskLines splits a model reply into cleaned task strings,
// tolerating bullets and numbering the prompt asked it to omit.
func parseTaskLines(out string) []string {
	var tasks []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789.) ")
		if line == "" {
			continue
		}
		tasks = append(tasks, line)
		if len(tasks) == 3 {
			break
		}
	}
	return tasks
}
