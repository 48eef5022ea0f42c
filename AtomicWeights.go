package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/firetune/AtomicWeights/atomicweight"
	"github.com/firetune/AtomicWeights/config"
	"github.com/firetune/AtomicWeights/history"
	ht "github.com/firetune/AtomicWeights/http"
	"github.com/firetune/AtomicWeights/isotope"
	"github.com/firetune/AtomicWeights/log"
	"github.com/firetune/AtomicWeights/remotedb"
	"github.com/firetune/AtomicWeights/table"
	"github.com/kardianos/service"
)

type app struct {
	conf      *config.Config
	provider  *table.Provider
	store     *history.Store
	stopWatch func()
}

func (p *app) Start(s service.Service) error {
	go p.run()
	return nil
}

func (p *app) run() {
	execPath, err := os.Executable()
	if err != nil {
		panic(err)
	}

	conf, err := config.LoadConfig(filepath.Join(filepath.Dir(execPath), "config.json"))
	if err != nil {
		panic(err)
	}

	p.conf = conf

	log.Setup(filepath.Join(filepath.Dir(execPath), "atomicweights.log"), conf.DebugMode)

	p.provider = table.NewProvider(conf.IsotopeCSVPath, conf.IsotopeMDBDSN)
	if err = p.provider.Load(); err != nil {
		panic(err)
	}
	log.Println("isotope table loaded from", p.provider.Source())

	if conf.WatchCSV {
		stop, err := p.provider.Watch()
		if err != nil {
			log.Println("Error watching isotope table", conf.IsotopeCSVPath, ":", err)
		} else {
			p.stopWatch = stop
		}
	}

	p.store, err = history.Open(conf.HistoryDBPath)
	if err != nil {
		panic(err)
	}

	if conf.RemoteDatabase.Address != "" {
		remotedb.Setup(conf)
	}

	ht.SetupServer(
		filepath.Join(filepath.Dir(execPath), "static"),
		p.natural,
		p.composition,
		p.elements,
		p.latestResults,
	)

	if err = ht.StartServer(conf.HTTPServerPort); err != nil {
		panic(err)
	}
}

func (p *app) Stop(s service.Service) error {
	if p.stopWatch != nil {
		p.stopWatch()
	}
	if p.store != nil {
		return p.store.Close()
	}
	return nil
}

func (p *app) natural(symbol string) (interface{}, error) {
	tbl := p.provider.Get()
	w, err := atomicweight.NaturalTolerance(symbol, tbl, p.conf.AbundanceTolerance)
	if err != nil {
		return nil, err
	}

	sym := isotope.CanonicalSymbol(symbol)
	isotopes := tbl[sym]

	res := ht.NaturalResponse{
		Symbol:        sym,
		AtomicWeightU: w,
		Isotopes:      len(isotopes),
	}
	if len(isotopes) > 0 {
		res.Element = isotopes[0].Element
	}

	p.recordResult(sym, w)
	return res, nil
}

func (p *app) composition(massesU, weights []float64) (interface{}, error) {
	w, err := atomicweight.FromWeightPercentWindow(massesU, weights, p.conf.PercentWindow)
	if err != nil {
		return nil, err
	}

	mode := "fraction"
	if atomicweight.PercentInput(weights, p.conf.PercentWindow) {
		mode = "percent"
	}
	return ht.CompositionResponse{AtomicWeightU: w, Mode: mode}, nil
}

func (p *app) elements() (interface{}, error) {
	tbl := p.provider.Get()

	entries := make([]ht.ElementEntry, 0, len(tbl))
	for sym, isotopes := range tbl {
		e := ht.ElementEntry{Symbol: sym, Isotopes: len(isotopes)}
		if len(isotopes) > 0 {
			e.Element = isotopes[0].Element
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Symbol < entries[j].Symbol })

	return entries, nil
}

func (p *app) latestResults() (interface{}, error) {
	return p.store.Latest(p.conf.NumberOfResults)
}

// recordResult logs a computed natural weight locally and, if configured,
// forwards new results to the remote database in the background.
func (p *app) recordResult(symbol string, weight float64) {
	rec := history.Result{
		Symbol:        symbol,
		Source:        string(p.provider.Source()),
		AtomicWeightU: weight,
		ComputedAt:    time.Now(),
	}
	if err := p.store.Record(rec); err != nil {
		log.Println("Error recording result:", err)
		return
	}

	if p.conf.RemoteDatabase.Address == "" {
		return
	}
	go func() {
		latest, err := p.store.Latest(p.conf.NumberOfResults)
		if err != nil {
			log.Println("Error reading latest results for remote insert:", err)
			return
		}
		if err := remotedb.InsertNewResults(latest, p.conf.DebugMode); err != nil {
			log.Println("Error inserting new record into remote database:", err)
		}
	}()
}

func main() {
	svcFlag := flag.String("service", "", "Control the system service.")
	flag.Parse()

	svcConfig := &service.Config{
		Name:        "AtomicWeights",
		DisplayName: "Atomic Weights App",
		Description: "Computes element atomic weights from stable isotope tables",
	}

	prg := &app{}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		log.Fatal(err)
	}

	if *svcFlag != "" {
		err = service.Control(s, *svcFlag)
		if err != nil {
			log.Printf("Valid actions: %q\n", service.ControlAction)
			log.Fatal(err)
		}
		return
	}

	logger, err := s.Logger(nil)
	if err != nil {
		log.Fatal(err)
	}
	err = s.Run()
	if err != nil {
		logger.Error(err)
	}
}
