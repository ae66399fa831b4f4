package stream

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedDelivery(t *testing.T) {
	s := New[int]()
	for i := 0; i < 100; i++ {
		s.Send(i)
	}
	s.Close()

	got := s.Collect()
	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestSendNeverBlocks(t *testing.T) {
	s := New[int]()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100000; i++ {
			s.Send(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Send blocked without a reader")
	}
	s.Close()
	assert.Len(t, s.Collect(), 100000)
}

func TestManyProducers(t *testing.T) {
	s := New[int]()
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.Send(p*1000 + i)
			}
		}(p)
	}
	go func() {
		wg.Wait()
		s.Close()
	}()

	got := s.Collect()
	sort.Ints(got)
	require.Len(t, got, 8000)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 8000, s.Sent())
}

func TestStopEarly(t *testing.T) {
	s := New[int]()
	for i := 0; i < 10; i++ {
		s.Send(i)
	}

	var got []int
	for v := range s.All() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, got)

	// producers keep going after the reader left
	s.Send(42)
	s.Close()
	select {
	case _, ok := <-s.C():
		for ok {
			_, ok = <-s.C()
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after Stop")
	}
}

func TestCloseWithError(t *testing.T) {
	boom := errors.New("boom")
	s := New[int]()
	s.Send(1)
	s.CloseWithError(boom)
	s.CloseWithError(nil)

	assert.Equal(t, []int{1}, s.Collect())
	assert.ErrorIs(t, s.Err(), boom)

	ok := New[int]()
	ok.Close()
	ok.Collect()
	assert.NoError(t, ok.Err())
}

func TestEmpty(t *testing.T) {
	s := New[string]()
	s.Close()
	assert.Empty(t, s.Collect())
}
