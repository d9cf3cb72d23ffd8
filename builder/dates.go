package builder

import (
	"strconv"
	"strings"
)

// Role names one of the five semantic date slots a source year/type pair can
// classify into. Role values are the OIM attribute names they populate.
type Role string

const (
	// RoleDatePub is the publication date
	RoleDatePub Role = "datePub"
	// RoleDate is the general/situation date
	RoleDate Role = "date"
	// RoleDateSurvey is the survey date
	RoleDateSurvey Role = "dateSurvey"
	// RoleDatePhoto is the aerial photography date
	RoleDatePhoto Role = "datePhoto"
	// RoleEdition is the edition date, sharing the edition attribute
	RoleEdition Role = "edition"
)

// roleByType partitions the universe of source date type codes into the five
// roles. Codes outside the table are legacy values with no OIM equivalent
// and are dropped during classification.
var roleByType = map[int]Role{
	97:  RoleDatePub,
	98:  RoleDatePub,
	99:  RoleDatePub,
	113: RoleDatePub,

	100: RoleDate,
	110: RoleDate,
	114: RoleDate,
	116: RoleDate,
	118: RoleDate,
	119: RoleDate,

	102: RoleDateSurvey,
	109: RoleDateSurvey,
	115: RoleDateSurvey,

	103: RoleDatePhoto,
	104: RoleDatePhoto,
	105: RoleDatePhoto,
	106: RoleDatePhoto,
	120: RoleDatePhoto,

	121: RoleEdition,
}

// DatePair is one (year value, year type code) observation from a source
// record. Either element may be empty, meaning no observation.
type DatePair struct {
	Year string
	Type string
}

// parseInt parses integer-valued text, tolerating the trailing ".0" that
// numeric columns pick up in some database exports.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// ClassifyDates resolves a sequence of year/type observations into the five
// date roles.
//
// For each pair with both elements present, the type code selects a role and
// the year competes for that role's slot: the numerically largest year wins,
// and on exact equality the first-seen value is retained (strict greater-than
// comparison). Pairs with unknown type codes or unparseable years are
// silently dropped. The result maps each observed role to the winning year's
// original text; roles with no observations are absent.
//
// ClassifyDates is a pure function of its input; given the tie-break rule,
// processing order only matters for exact-equality retention.
func ClassifyDates(pairs []DatePair) map[Role]string {
	type best struct {
		year int
		text string
	}
	winners := make(map[Role]best)

	for _, p := range pairs {
		if p.Year == "" || p.Type == "" {
			continue
		}
		code, ok := parseInt(p.Type)
		if !ok {
			continue
		}
		role, ok := roleByType[code]
		if !ok {
			continue
		}
		year, ok := parseInt(p.Year)
		if !ok {
			continue
		}
		if cur, seen := winners[role]; !seen || year > cur.year {
			winners[role] = best{year: year, text: p.Year}
		}
	}

	if len(winners) == 0 {
		return nil
	}
	out := make(map[Role]string, len(winners))
	for role, b := range winners {
		out[role] = b.text
	}
	return out
}
