package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattrebelskey/IFS-app/internal/advisor"
	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *app.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "state.json"), nil)
	container := app.NewContainer(store, nil)
	h := NewHandler(container, advisor.New("", "", "", nil))
	return NewRouter(h, nil), container
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToggleTaskAwardsXP(t *testing.T) {
	r, c := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/tasks/toggle", map[string]any{
		"taskId": "basic_water",
		"date":   "2024-03-01",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Result struct {
			Completed bool `json:"completed"`
			XPChange  int  `json:"xpChange"`
			TotalXP   int  `json:"totalXp"`
		} `json:"result"`
		NewBadges []string `json:"newBadges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Completed)
	assert.Equal(t, 1, resp.Result.XPChange)
	assert.Contains(t, resp.NewBadges, "first_step")
	assert.Equal(t, 1, c.Snapshot().TotalXP)
}

func TestToggleUnknownTaskReturns400(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/v1/tasks/toggle", map[string]any{
		"taskId": "basic_made_up",
		"date":   "2024-03-01",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "taskId", resp["field"])
}

func TestAddBasicValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/v1/basics", map[string]any{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/basics", map[string]any{"text": "Water a plant"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var task struct {
		ID      string `json:"id"`
		XPValue int    `json:"xpValue"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Contains(t, task.ID, "basic_custom_")
	assert.Equal(t, 1, task.XPValue)
}

func TestProgressReportsDerivedValues(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, id := range []string{"basic_meal", "basic_hygiene", "basic_water"} {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/tasks/toggle", map[string]any{
			"taskId": id, "date": "2024-03-01",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, r, http.MethodGet, "/api/v1/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalXP      int    `json:"totalXp"`
		CurrentLevel string `json:"currentLevel"`
		CycleXP      int    `json:"cycleXp"`
		MaxStreak    int    `json:"maxStreak"`
		CanPrestige  bool   `json:"canPrestige"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalXP)
	assert.Equal(t, "Survivor", resp.CurrentLevel)
	assert.Equal(t, 3, resp.CycleXP)
	assert.Equal(t, 1, resp.MaxStreak)
	assert.False(t, resp.CanPrestige)
}

func TestPrestigeRejectedBelowWindow(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/v1/prestige", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadgesListsCatalogWithUnlockedFlags(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks/toggle", map[string]any{
		"taskId": "basic_meal", "date": "2024-03-01",
	})

	rec := doJSON(t, r, http.MethodGet, "/api/v1/badges", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var badges []struct {
		ID       string `json:"id"`
		Unlocked bool   `json:"unlocked"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &badges))
	require.Len(t, badges, 9)

	byID := map[string]bool{}
	for _, b := range badges {
		byID[b.ID] = b.Unlocked
	}
	assert.True(t, byID["first_step"])
	assert.False(t, byID["week_warrior"])
}

func TestApplyTemplateEndpoint(t *testing.T) {
	r, c := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/v1/template", map[string]any{"name": "Grief Journey"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Grief Journey", c.Snapshot().ActiveTemplate)
}

func TestLibraryEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/v1/library", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []engine.LibraryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 9)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/library?category=Specific+Parts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 3)
	assert.Equal(t, "Managers", entries[0].Title)
}

func TestAITasksAlwaysReturnsThree(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/v1/ai/tasks", map[string]any{"mood": "anxious"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tasks []string `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Tasks, 3)
}

func TestAICompassionWithoutModel(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/v1/ai/compassion", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["message"])
}

func TestExportReturnsAttachment(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/v1/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "healing-journey-backup-")

	var state map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Contains(t, state, "totalXp")
}

func TestResetEndpointSeedsState(t *testing.T) {
	r, c := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks/toggle", map[string]any{
		"taskId": "basic_meal", "date": "2024-03-01",
	})

	rec := doJSON(t, r, http.MethodPost, "/api/v1/reset", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, c.Snapshot().TotalXP)
}

func TestSurvivalModeSettingEndpoint(t *testing.T) {
	r, c := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/v1/settings/survival", map[string]any{"enabled": true})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, c.Snapshot().Settings.SurvivalMode)
}
