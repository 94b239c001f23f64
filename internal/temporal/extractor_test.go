package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins relative-day resolution to 2025-04-10 09:00 KST.
var fixedNow = time.Date(2025, 4, 10, 9, 0, 0, 0, KST)

func newTestExtractor() *Extractor {
	return NewExtractor(ExtractorDependencies{
		Now: func() time.Time { return fixedNow },
	})
}

func TestExtractRangeExpression(t *testing.T) {
	e := newTestExtractor()

	schedules := e.Extract("오후 2시부터 3시까지 회의")
	require.Len(t, schedules, 1)

	s := schedules[0]
	assert.Equal(t, "오후 2시부터 3시까지", s.Raw)
	assert.Equal(t, "회의", s.Task)

	require.NotNil(t, s.StartDate)
	require.NotNil(t, s.EndDate)
	assert.Equal(t, 14, s.StartDate.Hour())
	assert.Equal(t, 15, s.EndDate.Hour())
	assert.False(t, s.EndDate.Before(*s.StartDate))
}

func TestExtractOvernightCorrection(t *testing.T) {
	e := newTestExtractor()

	schedules := e.Extract("23시부터 1시까지 서버 점검")
	require.Len(t, schedules, 1)

	s := schedules[0]
	require.NotNil(t, s.StartDate)
	require.NotNil(t, s.EndDate)
	assert.Equal(t, 23, s.StartDate.Hour())
	// end parsed before start, shifted forward by 12 hours
	assert.Equal(t, 13, s.EndDate.Hour())
	assert.Equal(t, "서버 점검", s.Task)
}

func TestExtractRelativeDayResolution(t *testing.T) {
	e := newTestExtractor()

	schedules := e.Extract("내일 오전 10시에 회의")
	require.Len(t, schedules, 1)

	s := schedules[0]
	require.NotNil(t, s.StartDate)
	expected := time.Date(2025, 4, 11, 10, 0, 0, 0, KST)
	assert.True(t, s.StartDate.Equal(expected), "got %s, want %s", s.StartDate, expected)
	assert.True(t, s.EndDate.Equal(expected))
	assert.Equal(t, "회의", s.Task)
}

func TestExtractRelativeDayRange(t *testing.T) {
	e := newTestExtractor()

	schedules := e.Extract("내일 오후 2시부터 4시까지 워크숍")
	require.Len(t, schedules, 1)

	s := schedules[0]
	require.NotNil(t, s.StartDate)
	require.NotNil(t, s.EndDate)
	assert.Equal(t, 11, s.StartDate.Day())
	assert.Equal(t, 14, s.StartDate.Hour())
	assert.Equal(t, 11, s.EndDate.Day())
	assert.Equal(t, 16, s.EndDate.Hour())
}

func TestExtractTaskResidual(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "subject and time stripped",
			input:    "저는 내일 오전 10시에 발표 준비",
			expected: "발표 준비",
		},
		{
			name:     "nothing left falls back to sentinel",
			input:    "내일 오전 10시에",
			expected: TaskUnspecified,
		},
		{
			name:     "trailing punctuation trimmed",
			input:    "오후 2시부터 3시까지 회의!",
			expected: "회의",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedules := e.Extract(tt.input)
			require.Len(t, schedules, 1)
			assert.Equal(t, tt.expected, schedules[0].Task)
		})
	}
}

func TestExtractTimeOnlyDefaultsToToday(t *testing.T) {
	e := newTestExtractor()

	schedules := e.Extract("오후 6시에 저녁 약속")
	require.Len(t, schedules, 1)

	s := schedules[0]
	require.NotNil(t, s.StartDate)
	assert.Equal(t, 2025, s.StartDate.Year())
	assert.Equal(t, time.April, s.StartDate.Month())
	assert.Equal(t, 10, s.StartDate.Day())
	assert.Equal(t, 18, s.StartDate.Hour())

	_, offset := s.StartDate.Zone()
	assert.Equal(t, 9*60*60, offset)
}

func TestExtractExplicitDate(t *testing.T) {
	e := newTestExtractor()

	schedules := e.Extract("4월 20일 오전 9시 병원 예약")
	require.Len(t, schedules, 1)

	s := schedules[0]
	require.NotNil(t, s.StartDate)
	assert.Equal(t, time.April, s.StartDate.Month())
	assert.Equal(t, 20, s.StartDate.Day())
	assert.Equal(t, 9, s.StartDate.Hour())
	assert.Equal(t, "병원 예약", s.Task)
}

func TestExtractMultipleSentences(t *testing.T) {
	e := newTestExtractor()

	schedules := e.Extract("내일 오전 10시에 회의. 모레 오후 3시에 미팅")
	require.Len(t, schedules, 2)

	assert.Equal(t, 11, schedules[0].StartDate.Day())
	assert.Equal(t, 10, schedules[0].StartDate.Hour())
	assert.Equal(t, 12, schedules[1].StartDate.Day())
	assert.Equal(t, 15, schedules[1].StartDate.Hour())
}

func TestExtractNoTemporalContent(t *testing.T) {
	e := newTestExtractor()

	assert.Empty(t, e.Extract("장보기 목록 정리하기"))
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n  "))
}

func TestExtractRangeAndPointInOneSentence(t *testing.T) {
	e := newTestExtractor()

	schedules := e.Extract("오후 2시부터 3시까지 회의하고 저녁 7시에 식사")
	require.Len(t, schedules, 2)

	assert.Equal(t, 14, schedules[0].StartDate.Hour())
	assert.Equal(t, 15, schedules[0].EndDate.Hour())
	assert.Equal(t, 19, schedules[1].StartDate.Hour())
}
