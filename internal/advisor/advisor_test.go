package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"

	"github.com/mattrebelskey/IFS-app/internal/engine"
)

// stubModel returns a canned reply, or fails when err is set.
type stubModel struct {
	reply string
	err   error
}

func (m *stubModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.reply}},
	}, nil
}

func (m *stubModel) Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestCompassionQuotesSet(t *testing.T) {
	assert.Len(t, compassionQuotes, 8)
	assert.Contains(t, compassionQuotes, "I am doing my best with what I have today. That is enough.")
	assert.Contains(t, compassionQuotes, "Success = 60%, not perfection.")
	assert.Contains(t, compassionQuotes, "All parts are welcome here.")
}

func TestEncouragementWithoutModel(t *testing.T) {
	a := New("", "", "", nil)
	msg := a.GenerateEncouragement(context.Background(), engine.SeedState())
	assert.Contains(t, compassionQuotes, msg)
}

func TestEncouragementFromModel(t *testing.T) {
	a := NewWithModel(&stubModel{reply: "  You showed up today, and that matters.  "}, nil)
	msg := a.GenerateEncouragement(context.Background(), engine.SeedState())
	assert.Equal(t, "You showed up today, and that matters.", msg)
}

func TestEncouragementFallsBackOnError(t *testing.T) {
	a := NewWithModel(&stubModel{err: errors.New("rate limited")}, nil)
	msg := a.GenerateEncouragement(context.Background(), engine.SeedState())
	assert.Contains(t, compassionQuotes, msg)
}

func TestSuggestMicroTasksAlwaysThree(t *testing.T) {
	cases := map[string]string{
		"clean lines":  "Sip some water\nRoll your shoulders\nName one sound you hear",
		"bulleted":     "- Sip some water\n- Roll your shoulders\n- Name one sound you hear\n- Extra item",
		"short reply":  "Sip some water",
		"blank padded": "\n\nSip some water\n\nRoll your shoulders\n",
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			a := NewWithModel(&stubModel{reply: reply}, nil)
			tasks := a.SuggestMicroTasks(context.Background(), "overwhelmed")
			assert.Len(t, tasks, 3)
			for _, task := range tasks {
				assert.NotEmpty(t, task)
				assert.Equal(t, strings.TrimSpace(task), task)
			}
		})
	}
}

func TestSuggestMicroTasksFallback(t *testing.T) {
	a := NewWithModel(&stubModel{err: errors.New("timeout")}, nil)
	assert.Equal(t, fallbackMicroTasks, a.SuggestMicroTasks(context.Background(), "tired"))
}

func TestSuggestHabitStackFallback(t *testing.T) {
	a := New("", "", "", nil)
	got := a.SuggestHabitStack(context.Background(), "brush my teeth")
	assert.Equal(t, "After I brush my teeth, I will take one deep breath.", got)
}

func TestSuggestHabitStackFromModel(t *testing.T) {
	a := NewWithModel(&stubModel{reply: "After I pour my coffee, I will write down one feeling."}, nil)
	got := a.SuggestHabitStack(context.Background(), "pour my coffee")
	assert.Equal(t, "After I pour my coffee, I will write down one feeling.", got)
}
