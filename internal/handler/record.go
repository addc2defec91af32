package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/keysheet/keysheet-go/internal/model"
	"github.com/keysheet/keysheet-go/internal/repository"
	"github.com/keysheet/keysheet-go/internal/service"
)

// RecordHandler handles HTTP requests for the password record book.
type RecordHandler struct {
	service *service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(svc *service.RecordService) *RecordHandler {
	return &RecordHandler{service: svc}
}

// HandleSaveRecord handles POST /api/v1/records requests.
func (h *RecordHandler) HandleSaveRecord(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	var req model.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Save(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPurposeRequired), errors.Is(err, service.ErrEmptyPassword):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, repository.ErrMalformedSheet):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListRecords handles GET /api/v1/records requests.
func (h *RecordHandler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List()
	if err != nil {
		if errors.Is(err, repository.ErrMalformedSheet) {
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, records)
}
