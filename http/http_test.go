package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/firetune/AtomicWeights/atomicweight"
	"github.com/firetune/AtomicWeights/isotope"
)

func setupTestFuncs() {
	tbl := isotope.Seed()

	naturalFunc = func(symbol string) (interface{}, error) {
		w, err := atomicweight.Natural(symbol, tbl)
		if err != nil {
			return nil, err
		}
		return NaturalResponse{
			Symbol:        isotope.CanonicalSymbol(symbol),
			AtomicWeightU: w,
			Isotopes:      len(tbl[isotope.CanonicalSymbol(symbol)]),
		}, nil
	}
	compositionFunc = func(masses, weights []float64) (interface{}, error) {
		w, err := atomicweight.FromWeightPercent(masses, weights)
		if err != nil {
			return nil, err
		}
		mode := "fraction"
		if atomicweight.PercentInput(weights, atomicweight.DefaultPercentWindow) {
			mode = "percent"
		}
		return CompositionResponse{AtomicWeightU: w, Mode: mode}, nil
	}
	elementsFunc = func() (interface{}, error) {
		entries := []ElementEntry{{Symbol: "Sn", Element: "Tin", Isotopes: 10}}
		return entries, nil
	}
	latestFunc = func() (interface{}, error) {
		return []struct{}{}, nil
	}
}

func TestAtomicWeightEndpoint(t *testing.T) {
	setupTestFuncs()

	r := httptest.NewRequest(http.MethodGet, "/atomicweight?symbol=sn", nil)
	w := httptest.NewRecorder()
	atomicWeightEndpoint(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var resp NaturalResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Symbol != "Sn" || resp.Isotopes != 10 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.AtomicWeightU < 118.70 || resp.AtomicWeightU > 118.72 {
		t.Fatalf("atomic weight = %f", resp.AtomicWeightU)
	}
}

func TestAtomicWeightEndpointMissingSymbol(t *testing.T) {
	setupTestFuncs()

	r := httptest.NewRequest(http.MethodGet, "/atomicweight", nil)
	w := httptest.NewRecorder()
	atomicWeightEndpoint(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAtomicWeightEndpointUnknownSymbol(t *testing.T) {
	setupTestFuncs()

	r := httptest.NewRequest(http.MethodGet, "/atomicweight?symbol=Xx", nil)
	w := httptest.NewRecorder()
	atomicWeightEndpoint(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestWeightPercentEndpoint(t *testing.T) {
	setupTestFuncs()

	body := `{"masses_u":[238.0496,239.0522,240.0538,241.0568,242.0587],"weights":[15,35,15,20,15]}`
	r := httptest.NewRequest(http.MethodPost, "/weightpercent", strings.NewReader(body))
	w := httptest.NewRecorder()
	weightPercentEndpoint(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var resp CompositionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Mode != "percent" {
		t.Errorf("mode = %s, want percent", resp.Mode)
	}
	if resp.AtomicWeightU < 239 || resp.AtomicWeightU > 241 {
		t.Errorf("atomic weight = %f", resp.AtomicWeightU)
	}
}

func TestWeightPercentEndpointBadInput(t *testing.T) {
	setupTestFuncs()

	body := `{"masses_u":[1,2,3],"weights":[50,50]}`
	r := httptest.NewRequest(http.MethodPost, "/weightpercent", strings.NewReader(body))
	w := httptest.NewRecorder()
	weightPercentEndpoint(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestWeightPercentEndpointMethod(t *testing.T) {
	setupTestFuncs()

	r := httptest.NewRequest(http.MethodGet, "/weightpercent", nil)
	w := httptest.NewRecorder()
	weightPercentEndpoint(w, r)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}

func TestStatusForError(t *testing.T) {
	tbl := isotope.Table{
		"Zz": {{Symbol: "Zz", A: 1, MassU: 1, AbundancePercent: 50, Stable: true}},
	}
	_, inconsistent := atomicweight.Natural("Zz", tbl)

	if statusForError(inconsistent) != http.StatusUnprocessableEntity {
		t.Errorf("inconsistent data should map to 422")
	}
}
