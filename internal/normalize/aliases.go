package normalize

// aliases corrects known spelling divergences between the boundary
// dataset and the result tables, keyed by the cleaned boundary
// spelling. Accumulated empirically from reconciliation misses (see
// the suggest-aliases workflow); treat as versioned data, not logic.
var aliases = map[string]string{
	"thiruvarur":         "tiruvarur",
	"thoothukkudi":       "thoothukudi",
	"tuticorin":          "thoothukudi",
	"kanniyakumari":      "kanyakumari",
	"thiruvallur":        "tiruvallur",
	"tiruvallore":        "tiruvallur",
	"thiruvannamalai":    "tiruvannamalai",
	"virudunagar":        "virudhunagar",
	"sriperumpudur":      "sriperumbudur",
	"udagamandalam":      "udhagamandalam",
	"ootacamund":         "udhagamandalam",
	"senji":              "gingee",
	"thirupparankundram": "tiruparankundram",
	"thanjavur east":     "thanjavur",
	"purasawalkam":       "purasaiwalkam",
	"mailam":             "vanur",
	"cuddalur":           "cuddalore",
	"panrutti":           "panruti",
	"arakonam":           "arakkonam",
	"krishnagiri town":   "krishnagiri",
	"palacode":           "palacodu",
	"sivakasi west":      "sivakasi",
	"bodinaickanur":      "bodinayakanur",
	"periyakulam west":   "periyakulam",
}
