package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"polititrack/internal/domain"
)

type searchResponse struct {
	Results []domain.PoliticianSummary `json:"results"`
}

type healthResponse struct {
	Report []domain.PoliticianDataHealth `json:"report"`
}

type politicianRecord struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	Suffix     *string `json:"suffix"`
	BirthDate  *string `json:"birth_date"`
	Gender     *string `json:"gender"`
	Biography  *string `json:"biography"`
	Website    *string `json:"website"`
	SourceID   *int64  `json:"source_id"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func politicianResponse(p *domain.Politician) politicianRecord {
	return politicianRecord{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		MiddleName: p.MiddleName,
		Suffix:     p.Suffix,
		BirthDate:  domain.FormatDate(p.BirthDate),
		Gender:     p.Gender,
		Biography:  p.Biography,
		Website:    p.Website,
		SourceID:   p.SourceID,
		CreatedAt:  domain.FormatTime(p.CreatedAt),
		UpdatedAt:  domain.FormatTime(p.UpdatedAt),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to status codes. Unexpected errors get
// a generic message so storage detail never leaks to clients.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: domain.ErrConflict.Error()})
	case isBadRequest(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func isBadRequest(err error) bool {
	for _, target := range []error{
		domain.ErrEmptyUpdate, domain.ErrInvalidQuery,
		errBadID, errBadPage, errBadSize, errBadSort, errBadBody, errBadDate, errMissingName,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
