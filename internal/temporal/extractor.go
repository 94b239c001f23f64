package temporal

import (
	"regexp"
	"strings"
	"time"

	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

// TaskUnspecified is the task sentinel used when stripping the temporal span
// leaves nothing behind.
const TaskUnspecified = "작업 내용 미확정"

const timePhrase = `(?:(?:오전|오후|아침|점심|낮|저녁|밤|새벽)\s*)?\d{1,2}\s*시(?:\s*\d{1,2}\s*분?)?(?:\s*에)?` +
	`|\d{1,2}\s*:\s*\d{2}`

// rangePattern matches "[rel-day] <start> 부터/~/- <end>[까지]" interval
// expressions before normalization.
var rangePattern = regexp.MustCompile(
	`(?:(오늘|내일|모레|글피)\s*)?` +
		`(` + timePhrase + `)` +
		`\s*(?:부터|~|-|–|—)\s*` +
		`(` + timePhrase + `)` +
		`(?:\s*까지)?`,
)

// sentenceSplitPattern breaks a paragraph into scanning units.
var sentenceSplitPattern = regexp.MustCompile(`[.!?\n]+`)

// leadingTokens are subject and time-adverb tokens stripped from the front of
// a residual task description.
var leadingTokens = []string{
	"나는", "제가", "우리는", "저는",
	"오늘", "내일", "모레", "글피",
	"오전", "오후", "아침", "점심", "저녁", "밤", "새벽",
}

const taskTrimCutset = " \t\r,.!?~-–—"

// Extractor finds schedule entries in Korean sentences. The clock is
// injectable so relative-day resolution is deterministic under test.
type Extractor struct {
	now func() time.Time
}

type ExtractorDependencies struct {
	Now func() time.Time
}

func NewExtractor(deps ExtractorDependencies) *Extractor {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Extractor{now: deps.Now}
}

// Extract returns every schedule found in text, ordered by match position.
// Range expressions are resolved first; the remainder is then scanned for
// single-point expressions. A span the parser cannot resolve yields no
// schedule and no error.
func (e *Extractor) Extract(text string) []domain.Schedule {
	now := e.now().In(KST)

	var schedules []domain.Schedule
	for _, unit := range sentenceSplitPattern.Split(text, -1) {
		unit = strings.TrimSpace(unit)
		if unit == "" {
			continue
		}
		schedules = append(schedules, e.extractFromUnit(unit, now)...)
	}
	return schedules
}

func (e *Extractor) extractFromUnit(unit string, now time.Time) []domain.Schedule {
	var schedules []domain.Schedule

	for _, groups := range rangePattern.FindAllStringSubmatch(unit, -1) {
		raw, relToken := groups[0], groups[1]

		start, startOK := parseSide(groups[2], relToken, now)
		end, endOK := parseSide(groups[3], relToken, now)
		if !startOK && !endOK {
			continue
		}

		// Implicit-meridiem intervals like "오후 2시부터 3시까지" parse the
		// end before the start; shift the end forward.
		if startOK && endOK && end.Before(start) {
			end = end.Add(12 * time.Hour)
		}

		schedule := domain.Schedule{
			Raw:  strings.TrimSpace(raw),
			Task: residualTask(unit, raw),
		}
		if startOK {
			schedule.StartDate = &start
		}
		if endOK {
			schedule.EndDate = &end
		}
		schedules = append(schedules, schedule)
	}

	remainder := rangePattern.ReplaceAllString(unit, " ")
	normalized := Normalize(remainder)

	for _, match := range SearchDates(normalized, now) {
		ts := resolveRelativeDay(match.Raw, match.Time, now)
		schedules = append(schedules, domain.Schedule{
			Raw:       match.Raw,
			StartDate: &ts,
			EndDate:   &ts,
			Task:      residualTask(normalized, match.Raw),
		})
	}

	return schedules
}

// parseSide resolves one side of a range expression. The relative-day token
// belongs to the whole range, so it prefixes both sides before resolution.
func parseSide(phrase, relToken string, now time.Time) (time.Time, bool) {
	matches := SearchDates(Normalize(phrase), now)
	if len(matches) == 0 {
		return time.Time{}, false
	}
	span := matches[0].Raw
	if relToken != "" {
		span = relToken + " " + span
	}
	return resolveRelativeDay(span, matches[0].Time, now), true
}

// resolveRelativeDay overrides the calendar date when the parser fell back to
// "today" but the span names a relative day, splicing the parsed clock onto
// now plus the token's offset.
func resolveRelativeDay(raw string, ts time.Time, now time.Time) time.Time {
	if ts.Year() != now.Year() || ts.YearDay() != now.YearDay() {
		return ts
	}
	trimmed := strings.TrimSpace(raw)
	for token, offset := range relativeDays {
		if strings.HasPrefix(trimmed, token) {
			base := now.AddDate(0, 0, offset)
			return time.Date(base.Year(), base.Month(), base.Day(), ts.Hour(), ts.Minute(), 0, 0, KST)
		}
	}
	return ts
}

// residualTask is the unit text minus the matched temporal span, with
// boilerplate subject/time tokens and stray punctuation stripped.
func residualTask(unit, span string) string {
	task := strings.Replace(unit, span, " ", 1)

	for changed := true; changed; {
		changed = false
		task = strings.Trim(task, taskTrimCutset)
		for _, token := range leadingTokens {
			if strings.HasPrefix(task, token) {
				task = strings.TrimSpace(task[len(token):])
				changed = true
			}
		}
	}

	if task == "" {
		return TaskUnspecified
	}
	return task
}
