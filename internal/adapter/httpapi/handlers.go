package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/thermo-data-service/internal/thermo"
	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

type errorResponse struct {
	Error string `json:"error"`
}

type speciesListResponse struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Count       int                 `json:"count"`
	Categories  map[string][]string `json:"categories"`
}

type formulaJSON struct {
	Symbol string  `json:"symbol"`
	Atoms  float64 `json:"atoms"`
}

type speciesResponse struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Comments    string        `json:"comments,omitempty"`
	RefCode     string        `json:"ref_code,omitempty"`
	Formula     []formulaJSON `json:"formula"`
	Phase       int           `json:"phase"`
	MolarMass   float64       `json:"molar_mass_kg_mol"`
	GasConstant float64       `json:"gas_constant_j_kg_k"`

	FormationEnthalpy    *float64 `json:"formation_enthalpy_j_mol,omitempty"`
	AssignedEnthalpy     *float64 `json:"assigned_enthalpy,omitempty"`
	ReferenceTemperature *float64 `json:"reference_temperature_k,omitempty"`

	IntervalCount  int       `json:"interval_count"`
	ValidityBounds []float64 `json:"validity_bounds_k,omitempty"`
}

type propertiesResponse struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Name        string             `json:"name"`
	Properties  []thermo.Properties `json:"properties"`
}

// handleListSpecies lists species names by category, optionally filtered by
// a name prefix (?prefix=N2).
func (s *Server) handleListSpecies(w http.ResponseWriter, r *http.Request) {
	s.metrics.LookupRequests.Inc()

	resp := speciesListResponse{
		GeneratedAt: s.clock.Now().UTC(),
		Categories:  make(map[string][]string, len(thermoinp.Categories)),
	}

	prefix := r.URL.Query().Get("prefix")
	if prefix != "" {
		for _, entry := range s.catalog.Lookup(prefix) {
			key := string(entry.Category)
			resp.Categories[key] = append(resp.Categories[key], entry.Record.Name)
			resp.Count++
		}
	} else {
		for _, category := range thermoinp.Categories {
			names := s.catalog.Names(category)
			resp.Categories[string(category)] = names
			resp.Count += len(names)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSpecies(w http.ResponseWriter, r *http.Request) {
	s.metrics.LookupRequests.Inc()

	entry, err := s.catalog.Species(r.PathValue("name"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	sp := entry.Species
	resp := speciesResponse{
		GeneratedAt:   s.clock.Now().UTC(),
		Name:          sp.Name,
		Category:      string(entry.Category),
		Comments:      sp.Comments,
		RefCode:       sp.RefCode,
		Formula:       make([]formulaJSON, 0, len(sp.Formula)),
		Phase:         sp.Phase,
		MolarMass:     sp.MolarMass,
		GasConstant:   sp.GasConstant,
		IntervalCount: entry.Record.IntervalCount,
	}
	for _, ec := range sp.Formula {
		resp.Formula = append(resp.Formula, formulaJSON{Symbol: ec.Symbol, Atoms: ec.Atoms})
	}
	if sp.HasFormation {
		resp.FormationEnthalpy = &sp.FormationEnthalpy
	} else {
		resp.AssignedEnthalpy = &sp.AssignedEnthalpy
		resp.ReferenceTemperature = &sp.ReferenceTemperature
	}
	if sp.Model != nil {
		tmin, tmax := sp.Model.Bounds()
		resp.ValidityBounds = []float64{tmin, tmax}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleProperties evaluates Cp/H/S at one or more temperatures supplied as
// a comma-separated ?t= parameter.
func (s *Server) handleProperties(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.metrics.PropertyRequestDuration.Observe(time.Since(start).Seconds())
	}()

	temps, err := parseTemps(r.URL.Query().Get("t"))
	if err != nil {
		s.metrics.PropertyRequests.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entry, err := s.catalog.Species(r.PathValue("name"))
	if err != nil {
		s.metrics.PropertyRequests.WithLabelValues("not_found").Inc()
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	resp := propertiesResponse{
		GeneratedAt: s.clock.Now().UTC(),
		Name:        entry.Record.Name,
		Properties:  make([]thermo.Properties, 0, len(temps)),
	}
	for _, T := range temps {
		props, err := entry.Species.Evaluate(T)
		if err != nil {
			s.writeEvaluateError(w, err)
			return
		}
		resp.Properties = append(resp.Properties, props)
	}

	s.metrics.PropertyRequests.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeEvaluateError(w http.ResponseWriter, err error) {
	var oor *thermo.OutOfRangeError
	switch {
	case errors.As(err, &oor):
		s.metrics.PropertyRequests.WithLabelValues("out_of_range").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, thermo.ErrNoThermoModel):
		s.metrics.PropertyRequests.WithLabelValues("no_model").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		s.metrics.PropertyRequests.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func parseTemps(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("query parameter t is required (comma-separated temperatures in K)")
	}
	fields := strings.Split(raw, ",")
	temps := make([]float64, 0, len(fields))
	for _, f := range fields {
		T, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.New("invalid temperature " + strconv.Quote(f))
		}
		if T <= 0 {
			return nil, errors.New("temperature must be positive: " + strconv.Quote(f))
		}
		temps = append(temps, T)
	}
	return temps, nil
}
