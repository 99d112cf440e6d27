package model

import "strings"

// Pre-poll alliance labels. Every party outside the two named fronts
// falls under AllianceOthers.
const (
	AllianceDMK    = "DMK+"
	AllianceADMK   = "ADMK+"
	AllianceOthers = "Others"
)

// allianceByParty is the fixed party-to-alliance partition. It is data,
// not logic: extend it when a party joins a front, never branch on
// party names elsewhere. Spelling variants of the same party (ADMK /
// AIADMK, AMMK) are all listed so that either source spelling resolves.
var allianceByParty = map[string]string{
	// DMK-led front
	"DMK":    AllianceDMK,
	"INC":    AllianceDMK,
	"VCK":    AllianceDMK,
	"CPI":    AllianceDMK,
	"CPM":    AllianceDMK,
	"CPI(M)": AllianceDMK,
	"MDMK":   AllianceDMK,
	"IUML":   AllianceDMK,
	"KMDK":   AllianceDMK,
	"MMK":    AllianceDMK,

	// ADMK-led front
	"ADMK":   AllianceADMK,
	"AIADMK": AllianceADMK,
	"AMMK":   AllianceADMK,
	"PMK":    AllianceADMK,
	"BJP":    AllianceADMK,
	"TMC(M)": AllianceADMK,
	"DMDK":   AllianceADMK,
	"PNK":    AllianceADMK,
}

// AllianceOf resolves a party abbreviation to its alliance.
// Parties outside both fronts, including independents, return
// AllianceOthers.
func AllianceOf(party string) string {
	if a, ok := allianceByParty[strings.ToUpper(strings.TrimSpace(party))]; ok {
		return a
	}
	return AllianceOthers
}

// Alliances lists the alliance labels in reporting order.
var Alliances = []string{AllianceDMK, AllianceADMK, AllianceOthers}
