package config

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/firetune/AtomicWeights/atomicweight"
)

type Config struct {
	HTTPServerPort  string `json:"http_server_port"`
	NumberOfResults int    `json:"number_of_results"` // number of latest results returned to client
	DebugMode       bool   `json:"debug_mode"`        // print logs out to console instead of file when true

	IsotopeCSVPath string `json:"isotope_csv_path"` // isotope table csv, built by IsotopeTableCSV
	IsotopeMDBDSN  string `json:"isotope_mdb_dsn"`  // optional: lab Access DB with isotope reference table
	WatchCSV       bool   `json:"watch_csv"`        // reload table when the csv changes on disk
	HistoryDBPath  string `json:"history_db_path"`  // local sqlite log of computed results

	AbundanceTolerance float64 `json:"abundance_tolerance"` // allowed deviation of abundance sums from 100
	PercentWindow      float64 `json:"percent_window"`      // window around 100 for percent detection

	RemoteDatabase struct {
		Address  string `json:"address"`
		User     string `json:"user"`
		Password string `json:"password"`
		Database string `json:"database"`
		Table    string `json:"table"`
	} `json:"remote_database"`
}

// LoadConfig reads the config file, filling defaults for anything not set.
// A missing file is not an error; the defaults make the service work out of
// the box with the built-in seed table.
func LoadConfig(filePath string) (*Config, error) {
	conf := Config{
		HTTPServerPort:     "80",
		NumberOfResults:    20,
		IsotopeCSVPath:     "isotopes.csv",
		HistoryDBPath:      "atomicweights.db",
		AbundanceTolerance: atomicweight.DefaultAbundanceTolerance,
		PercentWindow:      atomicweight.DefaultPercentWindow,
	}

	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &conf, nil
		}
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	err = dec.Decode(&conf)
	if err != nil {
		return nil, err
	}

	// validation
	if conf.HTTPServerPort == "" {
		return nil, errors.New("no http_server_port provided in config file")
	}
	if conf.NumberOfResults <= 0 {
		return nil, errors.New("number_of_results must be positive")
	}
	if conf.AbundanceTolerance <= 0 {
		return nil, errors.New("abundance_tolerance must be positive")
	}
	if conf.PercentWindow <= 0 {
		return nil, errors.New("percent_window must be positive")
	}

	return &conf, nil
}
