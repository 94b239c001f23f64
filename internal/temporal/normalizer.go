package temporal

import "regexp"

// meridiems maps Korean day-part markers to the AM/PM literal understood by
// the datetime parser.
var meridiems = map[string]string{
	"오전": "AM",
	"아침": "AM",
	"새벽": "AM",
	"오후": "PM",
	"점심": "PM",
	"낮":  "PM",
	"저녁": "PM",
	"밤":  "PM",
}

// clockPattern matches "[meridiem] H시[ M분][에]" and "H:MM" idioms.
var clockPattern = regexp.MustCompile(
	`(?:(오전|오후|아침|점심|저녁|밤|새벽)\s*)?(\d{1,2})\s*시(?:\s*(\d{1,2})\s*분?)?\s*에?` +
		`|(\d{1,2})\s*:\s*(\d{2})`,
)

// Normalize rewrites Korean clock-time idioms into "H:MM MERIDIEM" literals.
// Non-matching spans pass through untouched and the rewrite is idempotent:
// an already-normalized string comes back unchanged.
func Normalize(text string) string {
	return clockPattern.ReplaceAllStringFunc(text, func(m string) string {
		groups := clockPattern.FindStringSubmatch(m)

		hour := groups[2]
		minute := groups[3]
		if hour == "" {
			hour = groups[4]
			minute = groups[5]
		}
		if minute == "" {
			minute = "00"
		}
		if len(minute) == 1 {
			minute = "0" + minute
		}

		literal := hour + ":" + minute
		if meridiem, ok := meridiems[groups[1]]; ok {
			literal += " " + meridiem
		}
		return literal
	})
}
