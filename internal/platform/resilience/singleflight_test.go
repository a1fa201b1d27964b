package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[[]byte]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, _ := g.Do("GET /rest/v1/players", func() ([]byte, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return []byte("[]"), nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if string(val) != "[]" {
				t.Errorf("unexpected value %q", val)
			}
		}()
	}

	close(start)
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt32(&counter))
}

func TestSingleFlight_KeyIsReleasedAfterCall(t *testing.T) {
	var g SingleFlight[int]
	boom := errors.New("boom")

	_, err, shared := g.Do("k", func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	require.False(t, shared)

	v, err, _ := g.Do("k", func() (int, error) { return 2, nil })
	require.NoError(t, err)
	require.Equal(t, 2, v)
}
