package presence

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/presence-analyzer/presence-analyzer/internal/rest"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service  Service
	renderer StatsRenderer
}

func NewHandler(service Service, renderer StatsRenderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// MeanTimeWeekday godoc
// @Summary Mean presence time per weekday
// @Tags Presence
// @Produce json,text/csv
// @Param userId path int true "User id"
// @Success 200 {object} WeekdayValues
// @Failure 404 {object} rest.ErrorResponse "User not found"
// @Router /api/v1/mean_time_weekday/{userId} [get]
func (h *Handler) MeanTimeWeekday(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromPath(w, r)
	if !ok {
		return
	}
	log.Debugf("Getting mean presence time for user %d", userId)

	values, err := h.service.MeanTimeByWeekday(r.Context(), userId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if wantsCsv(r) {
		writeCsvResult(w, func() (string, error) { return h.renderer.RenderMeans(values) })
		return
	}
	rest.WriteJSON(w, values)
}

// PresenceWeekday godoc
// @Summary Total presence time per weekday
// @Tags Presence
// @Produce json,text/csv
// @Param userId path int true "User id"
// @Success 200 {object} map[string]any "Weekday header plus totals"
// @Failure 404 {object} rest.ErrorResponse "User not found"
// @Router /api/v1/presence_weekday/{userId} [get]
func (h *Handler) PresenceWeekday(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromPath(w, r)
	if !ok {
		return
	}
	log.Debugf("Getting total presence time for user %d", userId)

	totals, err := h.service.PresenceByWeekday(r.Context(), userId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if wantsCsv(r) {
		writeCsvResult(w, func() (string, error) { return h.renderer.RenderTotals(totals) })
		return
	}
	rest.WriteJSON(w, presenceWeekdayResponse(totals))
}

// PresenceStartEnd godoc
// @Summary Mean arrival and departure time per weekday
// @Tags Presence
// @Produce json,text/csv
// @Param userId path int true "User id"
// @Success 200 {object} map[string]StartEnd
// @Failure 404 {object} rest.ErrorResponse "User not found"
// @Router /api/v1/presence_start_end/{userId} [get]
func (h *Handler) PresenceStartEnd(w http.ResponseWriter, r *http.Request) {
	userId, ok := userIdFromPath(w, r)
	if !ok {
		return
	}
	log.Debugf("Getting mean start and end time for user %d", userId)

	startEnd, err := h.service.StartEndByWeekday(r.Context(), userId)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if wantsCsv(r) {
		writeCsvResult(w, func() (string, error) { return h.renderer.RenderStartEnd(startEnd) })
		return
	}
	rest.WriteJSON(w, startEnd)
}

// Reload godoc
// @Summary Drop cached presence data so the next request reads the source again
// @Tags Presence
// @Success 204
// @Router /api/v1/reload [post]
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reload(r.Context()); err != nil {
		log.Errorf("failed to reload presence data: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Reload failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// presenceWeekdayResponse adds the chart column header expected by the
// front-end next to the weekday totals.
func presenceWeekdayResponse(totals WeekdayTotals) map[string]any {
	response := make(map[string]any, len(totals)+1)
	response["Weekday"] = "Presence (s)"
	for day, total := range totals {
		response[day] = total
	}
	return response
}

func userIdFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := mux.Vars(r)["userId"]
	userId, err := strconv.Atoi(raw)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid user id", "userId must be an integer")
		return 0, false
	}
	return userId, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		rest.WriteError(w, http.StatusNotFound, "User not found", "")
	case errors.Is(err, ErrSourceUnavailable):
		rest.WriteError(w, http.StatusServiceUnavailable, "Presence data unavailable", err.Error())
	default:
		log.Errorf("presence query failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Presence query failed", err.Error())
	}
}

func wantsCsv(r *http.Request) bool {
	return r.Header.Get("Accept") == "text/csv"
}

func writeCsvResult(w http.ResponseWriter, render func() (string, error)) {
	body, err := render()
	if err != nil {
		rest.WriteError(w, http.StatusInternalServerError, "Failed to render csv", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Errorf("failed to write csv response: %v", err)
	}
}
