package datetime

var (
	monthNames = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	dayNames = []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
)

// named formats resolve to LDML patterns; keys are lower case.
var namedFormats = map[string]string{
	"shortdate":          "M/d/yyyy",
	"shorttime":          "h:mm a",
	"shortdateshorttime": "M/d/yyyy, h:mm a",
	"longdate":           "EEEE, MMMM d, yyyy",
	"longtime":           "h:mm:ss a",
	"longdatelongtime":   "EEEE, MMMM d, yyyy, h:mm:ss a",
	"monthandyear":       "MMMM yyyy",
	"monthandday":        "MMMM d",
	"year":               "yyyy",
	"month":              "MMMM",
	"day":                "d",
	"hour":               "HH",
	"minute":             "mm",
	"second":             "ss",
	"millisecond":        "SSS",
}

func abbreviate(names []string) []string {
	short := make([]string, len(names))
	for i, name := range names {
		short[i] = name[:3]
	}
	return short
}
