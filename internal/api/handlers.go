package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/metrics"
	"github.com/Veraticus/lifepath/internal/model"
	"github.com/Veraticus/lifepath/internal/numerology"
	"github.com/Veraticus/lifepath/internal/pathway"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// planRequest is the body accepted by the report, pathway, and plan routes.
// The engine accepts partial input, so name and dob are optional.
type planRequest struct {
	Name      string `json:"name" validate:"max=200"`
	DOB       string `json:"dob" validate:"max=64"`
	StartYear int    `json:"start_year,omitempty" validate:"omitempty,min=1,max=9999"`
}

type planResponse struct {
	Report  model.NumerologyReport `json:"report"`
	Pathway model.Pathway          `json:"pathway"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePlanRequest(w, r)
	if !ok {
		return
	}

	report := numerology.BuildReport(req.profile(), s.startYear(req.StartYear), s.forecastYears)
	s.metrics.IncrementReports(metrics.KindReport)
	s.writeJSON(w, r, http.StatusOK, report)
}

func (s *Server) handlePathway(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePlanRequest(w, r)
	if !ok {
		return
	}

	pw := s.planner.BuildPathway(req.profile(), s.startYear(req.StartYear), pathway.HorizonYears)
	s.metrics.IncrementReports(metrics.KindPathway)
	s.writeJSON(w, r, http.StatusOK, pw)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePlanRequest(w, r)
	if !ok {
		return
	}

	snap := s.planner.Snapshot(req.profile(), s.startYear(req.StartYear), s.forecastYears)
	s.metrics.IncrementReports(metrics.KindPlan)
	s.writeJSON(w, r, http.StatusOK, planResponse{Report: snap.Report, Pathway: snap.Pathway})
}

func (s *Server) handlePersonalYear(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dob := query.Get("dob")

	year := s.planner.CurrentYear()
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 9999 {
			s.badRequest(w, r, "year must be a calendar year between 1 and 9999", err)
			return
		}
		year = parsed
	}

	n := numerology.PersonalYear(dob, year)
	s.writeJSON(w, r, http.StatusOK, model.PersonalYearForecast{
		Year:   year,
		Number: n,
		Theme:  numerology.PersonalYearTheme(n),
	})
}

func (s *Server) handleYearPlan(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		s.badRequest(w, r, "number must be an integer", err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, pathway.PlanForPersonalYear(n))
}

func (s *Server) handleProfilePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	profile, err := s.store.GetProfile(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		s.writeError(w, r, http.StatusNotFound, codeNotFound, fmt.Sprintf("profile %s not found", id))
		return
	}
	if err != nil {
		s.internalError(w, r, "failed to load profile", err)
		return
	}

	snap, err := s.store.GetLatestSnapshot(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		fresh := s.planner.Snapshot(*profile, s.planner.CurrentYear(), s.forecastYears)
		s.metrics.IncrementReports(metrics.KindSnapshot)
		s.writeJSON(w, r, http.StatusOK, fresh)
		return
	}
	if err != nil {
		s.internalError(w, r, "failed to load snapshot", err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, snap)
}

func (s *Server) decodePlanRequest(w http.ResponseWriter, r *http.Request) (planRequest, bool) {
	var req planRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.badRequest(w, r, "invalid request body", err)
		return planRequest{}, false
	}

	if err := validate.Struct(req); err != nil {
		s.badRequest(w, r, describeValidation(err), err)
		return planRequest{}, false
	}

	return req, true
}

func (req planRequest) profile() model.UserProfile {
	return model.UserProfile{
		Name: strings.TrimSpace(req.Name),
		DOB:  strings.TrimSpace(req.DOB),
	}
}

func (s *Server) startYear(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.planner.CurrentYear()
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "StartYear":
			msgs = append(msgs, "start_year must be between 1 and 9999")
		case "Name":
			msgs = append(msgs, "name must be at most 200 characters")
		case "DOB":
			msgs = append(msgs, "dob must be at most 64 characters")
		default:
			msgs = append(msgs, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
