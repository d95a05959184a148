// Package temporal provides the calendar arithmetic shared by the
// feature extractor: Monday-first weekday indexing, week-of-month
// bucketing, and whole-day span computation.
package temporal

import "time"

// WeekdayIndex returns the weekday of t with Monday-first indexing.
// 0=월요일 … 6=일요일 (time.Weekday는 일요일=0이라 변환 필요)
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekOfMonth returns the 1-based week-of-month bucket for t.
// 주는 월요일에 시작하며, 1일이 속한 달력상 행이 1주차가 된다.
// 예: 1일이 목요일이면 다음 월요일부터 2주차
func WeekOfMonth(t time.Time) int {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	offset := WeekdayIndex(firstOfMonth)
	return (t.Day()-1+offset)/7 + 1
}

// DaysBetween returns the whole-day difference between the calendar
// dates of a and b (b - a). 시각 성분은 무시함
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// Midnight truncates t to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
