package remotedb

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/firetune/AtomicWeights/config"
	"github.com/firetune/AtomicWeights/history"
	"github.com/firetune/AtomicWeights/log"
	_ "github.com/denisenkom/go-mssqldb"
)

var connString, table string

func Setup(conf *config.Config) {
	c := &conf.RemoteDatabase
	connString = fmt.Sprintf("server=%s;user id=%s;password=%s;database=%s", c.Address, c.User, c.Password, c.Database)
	table = c.Table
}

// Insert newly computed atomic weight results into remote MS SQL Server database.
func InsertNewResults(results []history.Result, debug bool) error {
	conn, err := sql.Open("mssql", connString)
	if err != nil {
		return err
	}

	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return err
	}

	var lastTime time.Time
	if err = tx.QueryRow(`SELECT TOP (1) ComputedAt FROM ` + table + ` ORDER BY ID DESC;`).Scan(&lastTime); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			tx.Rollback()
			return err
		}
	}

	// We insert wall time (without TZ), so DB returns as UTC. Convert here to local, preserving wall clock time.
	lastTime, err = time.ParseInLocation("2006-01-02 15:04:05", lastTime.Format("2006-01-02 15:04:05"), time.Local)
	if err != nil {
		tx.Rollback()
		return err
	}

	if debug {
		log.Printf("remote DB last result timestamp: %s\n", lastTime)
	}

	// Oldest first, so a partial insert never leaves a gap behind the marker.
	for i := len(results) - 1; i >= 0; i-- {
		r := &results[i]
		if !r.ComputedAt.After(lastTime) {
			continue
		}

		qry := strings.Builder{}
		qry.WriteString(`INSERT INTO "`)
		qry.WriteString(table)
		qry.WriteString(`" ("ComputedAt", "Symbol", "TableSource", "AtomicWeight") VALUES ('`)
		qry.WriteString(r.ComputedAt.Format("2006-01-02 15:04:05"))
		qry.WriteString("', '")
		qry.WriteString(r.Symbol)
		qry.WriteString("', '")
		qry.WriteString(r.Source)
		qry.WriteString("', ")
		qry.WriteString(strconv.FormatFloat(r.AtomicWeightU, 'f', 8, 64))
		qry.WriteString(");")

		q := qry.String()
		if debug {
			log.Println("remote DB query: " + q)
		}
		if _, err := tx.Exec(q); err != nil {
			tx.Rollback()
			return errors.New("error executing insert statement: " + q + " Error: " + err.Error())
		}
	}

	if err = tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}

	return nil
}
