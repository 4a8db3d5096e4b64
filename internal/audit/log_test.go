package audit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_RecordKeepsInsertionOrder(t *testing.T) {
	log := NewLog(10)

	log.Record(ActionAddProduct, map[string]any{"name": "Бетон М500"}, "+79990000001")
	log.Record(ActionDeleteProduct, map[string]any{"name": "Пескобетон"}, "+79990000001")

	entries := log.List()
	require.Len(t, entries, 2)
	assert.Equal(t, ActionAddProduct, entries[0].Action)
	assert.Equal(t, ActionDeleteProduct, entries[1].Action)
	assert.Equal(t, "+79990000001", entries[0].AdminPhone)

	recent := log.Recent()
	assert.Equal(t, ActionDeleteProduct, recent[0].Action)
}

func TestLog_EvictsOldestWhenFull(t *testing.T) {
	log := NewLog(DefaultCapacity)

	for i := 0; i <= DefaultCapacity; i++ {
		log.Record(ActionUpdateUser, i, "")
	}

	entries := log.List()
	require.Len(t, entries, DefaultCapacity)
	assert.Equal(t, 1, entries[0].Details, "the first entry is evicted")
	assert.Equal(t, DefaultCapacity, entries[len(entries)-1].Details)
	assert.Equal(t, DefaultCapacity, log.Len())
}

func TestLog_ZeroCapacityUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewLog(0).Capacity())
}

func TestLog_ListenerAndClock(t *testing.T) {
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var got []Entry
	log := NewLog(5,
		WithClock(func() time.Time { return stamp }),
		WithListener(func(e Entry) { got = append(got, e) }),
	)

	log.Record(ActionDeleteUser, nil, "+79990000002")

	require.Len(t, got, 1)
	assert.Equal(t, stamp, got[0].Time)
	assert.Equal(t, ActionDeleteUser, got[0].Action)
}

func TestLog_ListenerMayReadLog(t *testing.T) {
	var log *Log
	var seen int
	log = NewLog(5, WithListener(func(Entry) { seen = log.Len() }))

	log.Record(ActionAddProduct, nil, "")

	assert.Equal(t, 1, seen)
}

func TestLog_ConcurrentRecord(t *testing.T) {
	log := NewLog(100)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				log.Record(ActionUpdateProduct, fmt.Sprintf("%d-%d", w, i), "")
				_ = log.List()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 100, log.Len())
	assert.Len(t, log.List(), 100)
}
