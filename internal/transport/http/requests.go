package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"polititrack/internal/domain"
	"polititrack/internal/service"
)

var (
	errBadID      = errors.New("id must be a positive integer")
	errBadPage    = errors.New("page must be a positive integer")
	errBadSize    = errors.New("size must be between 1 and 100")
	errBadSort    = errors.New("sort_by must be one of last_name_asc, last_name_desc, first_name_asc, first_name_desc")
	errBadBody    = errors.New("request body is not valid JSON")
	errBadDate    = errors.New("dates must be formatted as YYYY-MM-DD")
	errMissingName = errors.New("first_name and last_name are required")
)

const dateLayout = "2006-01-02"

func parseListFilter(r *http.Request) (domain.ListFilter, error) {
	q := r.URL.Query()

	filter := domain.ListFilter{
		Page:         1,
		Size:         20,
		SortBy:       domain.SortLastNameAsc,
		Party:        q.Get("party"),
		Jurisdiction: q.Get("jurisdiction"),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return domain.ListFilter{}, errBadPage
		}
		filter.Page = page
	}

	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > 100 {
			return domain.ListFilter{}, errBadSize
		}
		filter.Size = size
	}

	if raw := q.Get("sort_by"); raw != "" {
		key := domain.SortKey(raw)
		if !key.Valid() {
			return domain.ListFilter{}, errBadSort
		}
		filter.SortBy = key
	}

	return filter, nil
}

type createRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	Suffix     *string `json:"suffix"`
	BirthDate  *string `json:"birth_date"`
	Gender     *string `json:"gender"`
	Biography  *string `json:"biography"`
	Website    *string `json:"website"`
	SourceID   *int64  `json:"source_id"`
}

func decodeCreateRequest(r *http.Request) (service.CreatePoliticianInput, error) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.CreatePoliticianInput{}, errBadBody
	}
	if req.FirstName == "" || req.LastName == "" {
		return service.CreatePoliticianInput{}, errMissingName
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return service.CreatePoliticianInput{}, err
	}

	return service.CreatePoliticianInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Suffix:     req.Suffix,
		BirthDate:  birthDate,
		Gender:     req.Gender,
		Biography:  req.Biography,
		Website:    req.Website,
		SourceID:   req.SourceID,
	}, nil
}

type updateRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	Suffix     *string `json:"suffix"`
	BirthDate  *string `json:"birth_date"`
	Gender     *string `json:"gender"`
	Biography  *string `json:"biography"`
	Website    *string `json:"website"`
	SourceID   *int64  `json:"source_id"`
}

func decodeUpdateRequest(r *http.Request) (service.UpdatePoliticianInput, error) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.UpdatePoliticianInput{}, errBadBody
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return service.UpdatePoliticianInput{}, err
	}

	return service.UpdatePoliticianInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Suffix:     req.Suffix,
		BirthDate:  birthDate,
		Gender:     req.Gender,
		Biography:  req.Biography,
		Website:    req.Website,
		SourceID:   req.SourceID,
	}, nil
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, errBadDate
	}
	return &t, nil
}
