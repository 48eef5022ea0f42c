package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/firetune/AtomicWeights/atomicweight"
	"github.com/firetune/AtomicWeights/log"
)

// Results from these are encoded to JSON for the client.
var naturalFunc func(symbol string) (interface{}, error)
var compositionFunc func(massesU, weights []float64) (interface{}, error)
var elementsFunc func() (interface{}, error)
var latestFunc func() (interface{}, error)

type NaturalResponse struct {
	Symbol        string  `json:"symbol"`
	Element       string  `json:"element,omitempty"`
	AtomicWeightU float64 `json:"atomic_weight_u"`
	Isotopes      int     `json:"isotopes"`
}

type CompositionRequest struct {
	MassesU []float64 `json:"masses_u"`
	Weights []float64 `json:"weights"`
}

type CompositionResponse struct {
	AtomicWeightU float64 `json:"atomic_weight_u"`
	Mode          string  `json:"mode"` // percent or fraction
}

type ElementEntry struct {
	Symbol   string `json:"symbol"`
	Element  string `json:"element,omitempty"`
	Isotopes int    `json:"isotopes"`
}

func SetupServer(staticFilesPath string,
	natural func(string) (interface{}, error),
	composition func([]float64, []float64) (interface{}, error),
	elements func() (interface{}, error),
	latest func() (interface{}, error)) {

	naturalFunc = natural
	compositionFunc = composition
	elementsFunc = elements
	latestFunc = latest

	http.Handle("/", http.FileServer(http.Dir(staticFilesPath)))
	http.HandleFunc("/atomicweight", atomicWeightEndpoint)
	http.HandleFunc("/weightpercent", weightPercentEndpoint)
	http.HandleFunc("/elements", elementsEndpoint)
	http.HandleFunc("/results", resultsEndpoint)
}

func StartServer(port string) error {
	log.Println("Starting AtomicWeights service")
	return http.ListenAndServe(":"+port, nil)
}

func atomicWeightEndpoint(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "missing 'symbol' query parameter", http.StatusBadRequest)
		return
	}

	result, err := naturalFunc(symbol)
	if err != nil {
		errMsg := "Error computing atomic weight: " + err.Error()
		log.Println(errMsg)
		http.Error(w, errMsg, statusForError(err))
		return
	}

	writeJSON(w, result)
}

func weightPercentEndpoint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var req CompositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := compositionFunc(req.MassesU, req.Weights)
	if err != nil {
		errMsg := "Error computing atomic weight: " + err.Error()
		log.Println(errMsg)
		http.Error(w, errMsg, statusForError(err))
		return
	}

	writeJSON(w, result)
}

func elementsEndpoint(w http.ResponseWriter, r *http.Request) {
	result, err := elementsFunc()
	if err != nil {
		errMsg := "Error querying elements: " + err.Error()
		log.Println(errMsg)
		http.Error(w, errMsg, http.StatusInternalServerError)
		return
	}

	writeJSON(w, result)
}

func resultsEndpoint(w http.ResponseWriter, r *http.Request) {
	if latestFunc == nil {
		return
	}

	result, err := latestFunc()
	if err != nil {
		errMsg := "Error querying results: " + err.Error()
		log.Println(errMsg)
		http.Error(w, errMsg, http.StatusInternalServerError)
		return
	}

	writeJSON(w, result)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// statusForError maps calculator errors onto HTTP statuses: unknown symbols
// are 404, bad table data is 422, bad caller input is 400.
func statusForError(err error) int {
	switch {
	case errors.Is(err, atomicweight.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, atomicweight.ErrInconsistentData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, atomicweight.ErrShapeMismatch),
		errors.Is(err, atomicweight.ErrInvalidMass),
		errors.Is(err, atomicweight.ErrInvalidWeight),
		errors.Is(err, atomicweight.ErrDegenerateInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
