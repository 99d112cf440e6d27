package enrich

import (
	"strings"

	"github.com/tn-election-atlas/internal/model"
)

// Label resolves a source value against a lookup table, falling back to
// the source value when the table has no entry. This is the single
// lookup-with-fallback used for every localized field.
func Label(t Table, value string) string {
	if label, ok := t[strings.TrimSpace(value)]; ok {
		return label
	}
	return value
}

// Record fills the Tamil label fields of one record in place.
func Record(r *model.ElectionRecord) {
	r.ConstituencyTamil = Label(constituencyTamil, r.Constituency)
	r.DistrictTamil = Label(districtTamil, r.District)
	r.PartyTamil = Label(partyTamil, r.Party)
	r.EducationTamil = Label(educationTamil, r.Education)
	r.ProfessionTamil = Label(professionTamil, r.Profession)
	r.SexTamil = Label(sexTamil, strings.ToUpper(strings.TrimSpace(r.Sex)))
}

// All enriches every record once, after ingestion. The labels are pure
// functions of the base fields and are never recomputed afterwards.
func All(records []model.ElectionRecord) {
	for i := range records {
		Record(&records[i])
	}
}
