package ingest

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tn-election-atlas/internal/model"
)

// resultsQuery is the fixed column contract a SQL results source must
// satisfy. Both the postgres and sqlite drivers are registered; pick
// with the driver name in the config.
const resultsQuery = `
	SELECT year, constituency_name, constituency_type, district_name,
	       candidate, sex, age, party, education, profession,
	       votes, valid_votes, electors, turnout_pct, vote_share_pct,
	       position, margin, margin_pct, terms_won,
	       incumbent, turncoat, recontest, prior_party, prior_constituency
	FROM election_results
	ORDER BY year, constituency_name, position`

// ResultsSQL loads the full result set from a database table.
func ResultsSQL(ctx context.Context, driver, dsn string) ([]model.ElectionRecord, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s source: %w", driver, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("connect to %s source: %w", driver, err)
	}

	rows, err := db.QueryContext(ctx, resultsQuery)
	if err != nil {
		return nil, fmt.Errorf("query election_results: %w", err)
	}
	defer rows.Close()

	var records []model.ElectionRecord
	for rows.Next() {
		var (
			rec                            model.ElectionRecord
			age                            sql.NullInt64
			margin                         sql.NullInt64
			turnout                        sql.NullFloat64
			voteShare                      sql.NullFloat64
			marginPct                      sql.NullFloat64
			incumbent, turncoat, recontest sql.NullString
			priorParty, priorConstituency  sql.NullString
		)
		if err := rows.Scan(
			&rec.Year, &rec.Constituency, &rec.ConstituencyType, &rec.District,
			&rec.Candidate, &rec.Sex, &age, &rec.Party, &rec.Education, &rec.Profession,
			&rec.Votes, &rec.ValidVotes, &rec.Electors, &turnout, &voteShare,
			&rec.Position, &margin, &marginPct, &rec.TermsWon,
			&incumbent, &turncoat, &recontest, &priorParty, &priorConstituency,
		); err != nil {
			return nil, fmt.Errorf("scan election_results row: %w", err)
		}
		if age.Valid {
			v := int(age.Int64)
			rec.Age = &v
		}
		if margin.Valid {
			v := int(margin.Int64)
			rec.Margin = &v
		}
		if turnout.Valid {
			rec.TurnoutPct = &turnout.Float64
		}
		if voteShare.Valid {
			rec.VoteSharePct = &voteShare.Float64
		}
		if marginPct.Valid {
			rec.MarginPct = &marginPct.Float64
		}
		rec.Incumbent = model.Flag(incumbent.String)
		rec.Turncoat = model.Flag(turncoat.String)
		rec.Recontest = model.Flag(recontest.String)
		rec.PriorParty = priorParty.String
		rec.PriorConstituency = priorConstituency.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read election_results: %w", err)
	}
	return records, nil
}
