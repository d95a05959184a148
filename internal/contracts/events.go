package contracts

import (
	"sort"
	"time"
)

// EventRecord 한 엔티티의 이벤트 1건 (날짜 기준)
type EventRecord struct {
	EntityID string    `json:"entity_id"`
	Date     time.Time `json:"date"`
}

// EventHistory 한 엔티티의 날짜순 이벤트 이력
// 이 모듈은 이력을 읽기만 하고 절대 변경하지 않음
type EventHistory []EventRecord

// SortedByDate returns a copy of the history sorted ascending by date.
// Stable sort: 같은 날짜의 이벤트는 입력 순서를 유지함
func (h EventHistory) SortedByDate() EventHistory {
	sorted := make(EventHistory, len(h))
	copy(sorted, h)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
