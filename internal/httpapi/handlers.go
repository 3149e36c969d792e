package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mattrebelskey/IFS-app/internal/advisor"
	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/engine"
)

// Handler exposes the state container and advisor over HTTP.
type Handler struct {
	container *app.Container
	advisor   *advisor.Advisor
}

func NewHandler(container *app.Container, adv *advisor.Advisor) *Handler {
	return &Handler{container: container, advisor: adv}
}

// respondErr maps validation failures to 400 and everything else to 500.
func respondErr(c *gin.Context, err error) {
	var verr engine.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *Handler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *Handler) state(c *gin.Context) {
	c.JSON(http.StatusOK, h.container.Snapshot())
}

func (h *Handler) progress(c *gin.Context) {
	s := h.container.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"totalXp":          s.TotalXP,
		"currentLevel":     s.CurrentLevel,
		"cycleXp":          engine.CycleProgress(s.TotalXP),
		"cycleSize":        engine.CycleSize,
		"prestigeLevel":    s.PrestigeLevel,
		"canPrestige":      engine.CanPrestige(s.TotalXP),
		"maxStreak":        engine.MaxStreak(s.DailyHistory),
		"weeklyCompletion": engine.WeeklyCompletion(s, time.Now()),
	})
}

func (h *Handler) badges(c *gin.Context) {
	s := h.container.Snapshot()
	unlocked := make(map[string]bool, len(s.Badges))
	for _, id := range s.Badges {
		unlocked[id] = true
	}
	type badgeView struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Unlocked    bool   `json:"unlocked"`
	}
	var out []badgeView
	for _, b := range engine.BadgeCatalog() {
		out = append(out, badgeView{b.ID, b.Name, b.Description, b.Icon, unlocked[b.ID]})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) templates(c *gin.Context) {
	c.JSON(http.StatusOK, engine.Templates())
}

func (h *Handler) library(c *gin.Context) {
	c.JSON(http.StatusOK, engine.LibraryByCategory(c.Query("category")))
}

func (h *Handler) export(c *gin.Context) {
	data, err := h.container.ExportJSON()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+app.ExportFileName(app.Today()))
	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handler) toggleTask(c *gin.Context) {
	var req struct {
		TaskID string `json:"taskId" binding:"required"`
		Date   string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = app.Today()
	}
	res, newBadges, err := h.container.ToggleTask(req.TaskID, req.Date)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res, "newBadges": newBadges})
}

func (h *Handler) addBasic(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.container.AddBasicTask(req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) deleteBasic(c *gin.Context) {
	h.container.DeleteBasicTask(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) reorderBasics(c *gin.Context) {
	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.container.ReorderBasics(req.From, req.To); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addFocus(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.container.AddFocusTask(req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) deleteFocus(c *gin.Context) {
	h.container.DeleteFocusTask(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) addWin(c *gin.Context) {
	var req struct {
		Date      string             `json:"date"`
		Text      string             `json:"text"`
		Type      engine.JournalType `json:"type"`
		MediaData string             `json:"mediaData"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = app.Today()
	}
	win, newBadges, err := h.container.AddWin(req.Date, req.Text, req.Type, req.MediaData)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"win": win, "newBadges": newBadges})
}

func (h *Handler) deleteWin(c *gin.Context) {
	h.container.DeleteWin(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) addPart(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Role        string `json:"role"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	part, newBadges, err := h.container.AddPart(req.Name, engine.ParsePartRole(req.Role), req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"part": part, "newBadges": newBadges})
}

func (h *Handler) deletePart(c *gin.Context) {
	h.container.DeletePart(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) addCheckIn(c *gin.Context) {
	var req struct {
		Date        string   `json:"date"`
		ActiveParts []string `json:"activeParts"`
		Notes       string   `json:"notes"`
		Intensity   int      `json:"intensity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = app.Today()
	}
	ci, newBadges, err := h.container.AddCheckIn(req.Date, req.ActiveParts, req.Notes, req.Intensity)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"checkIn": ci, "newBadges": newBadges})
}

func (h *Handler) recordHealthLog(c *gin.Context) {
	var log engine.HealthLog
	if err := c.ShouldBindJSON(&log); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if log.Date == "" {
		log.Date = app.Today()
	}
	if err := h.container.RecordHealthLog(log); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addHabitStack(c *gin.Context) {
	var req struct {
		Cue    string `json:"cue"`
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stack, err := h.container.AddHabitStack(req.Cue, req.Action)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, stack)
}

func (h *Handler) deleteHabitStack(c *gin.Context) {
	h.container.DeleteHabitStack(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) applyTemplate(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl := h.container.ApplyTemplate(req.Name)
	c.JSON(http.StatusOK, tpl)
}

func (h *Handler) prestige(c *gin.Context) {
	level, err := h.container.Prestige()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prestigeLevel": level})
}

// reset erases everything. The client is expected to have confirmed with
// the user before calling; the server does not second-guess it.
func (h *Handler) reset(c *gin.Context) {
	h.container.Reset()
	c.Status(http.StatusNoContent)
}

func (h *Handler) setSurvival(c *gin.Context) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.container.SetSurvivalMode(req.Enabled)
	c.Status(http.StatusNoContent)
}

func (h *Handler) setName(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.container.SetName(req.Name)
	c.Status(http.StatusNoContent)
}

func (h *Handler) setTheme(c *gin.Context) {
	var req struct {
		Theme engine.Theme `json:"theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.container.SetTheme(req.Theme); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) aiCompassion(c *gin.Context) {
	msg := h.advisor.GenerateEncouragement(c.Request.Context(), h.container.Snapshot())
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) aiTasks(c *gin.Context) {
	var req struct {
		Mood string `json:"mood"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tasks := h.advisor.SuggestMicroTasks(c.Request.Context(), req.Mood)
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) aiHabitStack(c *gin.Context) {
	var req struct {
		Cue string `json:"cue" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	suggestion := h.advisor.SuggestHabitStack(c.Request.Context(), req.Cue)
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}
