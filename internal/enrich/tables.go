// Package enrich attaches Tamil display labels to ingested records.
// The lookup tables are versioned static data accumulated from the
// published localized datasets; missing keys fall back to the source
// value unchanged, so enrichment never drops or fails a record.
package enrich

// Table is one localized-label lookup, keyed by the source value.
type Table map[string]string

// constituencyTamil maps constituency names to their Tamil labels.
// Not exhaustive: unmapped constituencies render with the English name.
var constituencyTamil = Table{
	"Chennai":              "சென்னை",
	"Chepauk":              "சேப்பாக்கம்",
	"Egmore":               "எழும்பூர்",
	"Mylapore":             "மயிலாப்பூர்",
	"Madurai East":         "மதுரை கிழக்கு",
	"Madurai West":         "மதுரை மேற்கு",
	"Coimbatore North":     "கோயம்புத்தூர் வடக்கு",
	"Coimbatore South":     "கோயம்புத்தூர் தெற்கு",
	"Tiruchirappalli West": "திருச்சிராப்பள்ளி மேற்கு",
	"Tiruchirappalli East": "திருச்சிராப்பள்ளி கிழக்கு",
	"Salem North":          "சேலம் வடக்கு",
	"Salem South":          "சேலம் தெற்கு",
	"Tirunelveli":          "திருநெல்வேலி",
	"Thanjavur":            "தஞ்சாவூர்",
	"Vellore":              "வேலூர்",
	"Erode East":           "ஈரோடு கிழக்கு",
	"Erode West":           "ஈரோடு மேற்கு",
	"Dindigul":             "திண்டுக்கல்",
	"Karaikudi":            "காரைக்குடி",
	"Nagercoil":            "நாகர்கோவில்",
}

// districtTamil maps district names to their Tamil labels.
var districtTamil = Table{
	"Chennai":         "சென்னை",
	"Madurai":         "மதுரை",
	"Coimbatore":      "கோயம்புத்தூர்",
	"Tiruchirappalli": "திருச்சிராப்பள்ளி",
	"Salem":           "சேலம்",
	"Tirunelveli":     "திருநெல்வேலி",
	"Thanjavur":       "தஞ்சாவூர்",
	"Vellore":         "வேலூர்",
	"Erode":           "ஈரோடு",
	"Dindigul":        "திண்டுக்கல்",
	"Sivaganga":       "சிவகங்கை",
	"Kanyakumari":     "கன்னியாகுமரி",
	"Virudhunagar":    "விருதுநகர்",
	"Cuddalore":       "கடலூர்",
	"Villupuram":      "விழுப்புரம்",
	"Thoothukudi":     "தூத்துக்குடி",
	"Tiruvannamalai":  "திருவண்ணாமலை",
	"Nagapattinam":    "நாகப்பட்டினம்",
	"Tiruvarur":       "திருவாரூர்",
	"The Nilgiris":    "நீலகிரி",
}

// partyTamil maps party abbreviations to Tamil labels.
var partyTamil = Table{
	"DMK":    "தி.மு.க.",
	"ADMK":   "அ.தி.மு.க.",
	"AIADMK": "அ.இ.அ.தி.மு.க.",
	"INC":    "காங்கிரஸ்",
	"BJP":    "பா.ஜ.க.",
	"PMK":    "பா.ம.க.",
	"MDMK":   "ம.தி.மு.க.",
	"DMDK":   "தே.மு.தி.க.",
	"VCK":    "வி.சி.க.",
	"CPI":    "இ.க.க.",
	"CPM":    "மா.க.க.",
	"AMMK":   "அ.ம.மு.க.",
	"NTK":    "நா.த.க.",
	"IND":    "சுயேச்சை",
}

// educationTamil maps education levels to Tamil labels.
var educationTamil = Table{
	"Illiterate":            "எழுத்தறிவற்றவர்",
	"Literate":              "எழுத்தறிவு",
	"5th Pass":              "5ஆம் வகுப்பு",
	"8th Pass":              "8ஆம் வகுப்பு",
	"10th Pass":             "10ஆம் வகுப்பு",
	"12th Pass":             "12ஆம் வகுப்பு",
	"Graduate":              "பட்டதாரி",
	"Graduate Professional": "தொழில்முறை பட்டதாரி",
	"Post Graduate":         "முதுகலை பட்டதாரி",
	"Doctorate":             "முனைவர்",
	"Others":                "மற்றவை",
}

// professionTamil maps primary professions to Tamil labels.
var professionTamil = Table{
	"Agriculture": "விவசாயம்",
	"Business":    "வணிகம்",
	"Advocate":    "வழக்கறிஞர்",
	"Doctor":      "மருத்துவர்",
	"Teacher":     "ஆசிரியர்",
	"Social Work": "சமூகப் பணி",
	"Politics":    "அரசியல்",
	"Retired":     "ஓய்வு",
	"Others":      "மற்றவை",
}

// sexTamil maps the two sex codes to Tamil labels.
var sexTamil = Table{
	"M": "ஆண்",
	"F": "பெண்",
}
