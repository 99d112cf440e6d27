// Package ingest loads the two source datasets: tabular electoral
// results (CSV files, a SQL table, or an HTTP URL) and the constituency
// boundary GeoJSON. Each load is a single fetch-and-parse, idempotent
// on retry; the rest of the system only ever sees fully typed records.
package ingest

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gocarina/gocsv"

	"github.com/tn-election-atlas/internal/model"
)

// resultRow is one raw CSV row, header-driven. Numeric columns stay as
// text here so that blank cells convert to absent values instead of
// zeroes; convert() does the typing.
type resultRow struct {
	Year              string `csv:"Year"`
	Constituency      string `csv:"Constituency_Name"`
	ConstituencyType  string `csv:"Constituency_Type"`
	District          string `csv:"District_Name"`
	Candidate         string `csv:"Candidate"`
	Sex               string `csv:"Sex"`
	Age               string `csv:"Age"`
	Party             string `csv:"Party"`
	Education         string `csv:"Education"`
	Profession        string `csv:"Profession"`
	Votes             string `csv:"Votes"`
	ValidVotes        string `csv:"Valid_Votes"`
	Electors          string `csv:"Electors"`
	TurnoutPct        string `csv:"Turnout_Percentage"`
	VoteSharePct      string `csv:"Vote_Share_Percentage"`
	Position          string `csv:"Position"`
	Margin            string `csv:"Margin"`
	MarginPct         string `csv:"Margin_Percentage"`
	TermsWon          string `csv:"Terms_Won"`
	Incumbent         string `csv:"Incumbent"`
	Turncoat          string `csv:"Turncoat"`
	Recontest         string `csv:"Recontest"`
	PriorParty        string `csv:"Prior_Party"`
	PriorConstituency string `csv:"Prior_Constituency"`
}

// ResultsCSV parses one results file.
func ResultsCSV(r io.Reader) ([]model.ElectionRecord, error) {
	var rows []*resultRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse results csv: %w", err)
	}
	records := make([]model.ElectionRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := row.convert()
		if err != nil {
			return nil, fmt.Errorf("results csv row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ResultsGlob loads every results file matching the doublestar pattern,
// e.g. "data/results/**/tn_*.csv", one file per election year. Files
// load in path order so repeated loads produce identical record order.
func ResultsGlob(pattern string) ([]model.ElectionRecord, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand results glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("results glob %q matched no files", pattern)
	}
	sort.Strings(paths)

	var records []model.ElectionRecord
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open results file: %w", err)
		}
		recs, err := ResultsCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, recs...)
	}
	return records, nil
}

func (row *resultRow) convert() (model.ElectionRecord, error) {
	rec := model.ElectionRecord{
		Constituency:      strings.TrimSpace(row.Constituency),
		ConstituencyType:  strings.ToUpper(strings.TrimSpace(row.ConstituencyType)),
		District:          strings.TrimSpace(row.District),
		Candidate:         strings.TrimSpace(row.Candidate),
		Sex:               strings.ToUpper(strings.TrimSpace(row.Sex)),
		Party:             strings.TrimSpace(row.Party),
		Education:         strings.TrimSpace(row.Education),
		Profession:        strings.TrimSpace(row.Profession),
		Incumbent:         model.Flag(row.Incumbent),
		Turncoat:          model.Flag(row.Turncoat),
		Recontest:         model.Flag(row.Recontest),
		PriorParty:        strings.TrimSpace(row.PriorParty),
		PriorConstituency: strings.TrimSpace(row.PriorConstituency),
	}

	var err error
	if rec.Year, err = reqInt("Year", row.Year); err != nil {
		return rec, err
	}
	if rec.Votes, err = reqInt("Votes", row.Votes); err != nil {
		return rec, err
	}
	if rec.ValidVotes, err = reqInt("Valid_Votes", row.ValidVotes); err != nil {
		return rec, err
	}
	if rec.Electors, err = reqInt("Electors", row.Electors); err != nil {
		return rec, err
	}
	if rec.Position, err = reqInt("Position", row.Position); err != nil {
		return rec, err
	}
	if rec.TermsWon, err = reqInt("Terms_Won", row.TermsWon); err != nil {
		return rec, err
	}
	if rec.Age, err = optInt("Age", row.Age); err != nil {
		return rec, err
	}
	if rec.Margin, err = optInt("Margin", row.Margin); err != nil {
		return rec, err
	}
	if rec.TurnoutPct, err = optFloat("Turnout_Percentage", row.TurnoutPct); err != nil {
		return rec, err
	}
	if rec.VoteSharePct, err = optFloat("Vote_Share_Percentage", row.VoteSharePct); err != nil {
		return rec, err
	}
	if rec.MarginPct, err = optFloat("Margin_Percentage", row.MarginPct); err != nil {
		return rec, err
	}
	return rec, nil
}

// reqInt parses a required numeric column; blank counts as zero, which
// the validator flags later if it matters.
func reqInt(column, v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", column, err)
	}
	return n, nil
}

// optInt parses an optional numeric column; blank means absent, and
// absent values must fail range filters rather than matching as zero.
func optInt(column, v string) (*int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", column, err)
	}
	return &n, nil
}

func optFloat(column, v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", column, err)
	}
	return &f, nil
}
