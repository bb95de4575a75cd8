package viewmodel

import (
	"testing"

	domainerrors "smokebreak/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservable_SubscribeReceivesCurrentValue(t *testing.T) {
	obs := NewObservable(1)

	ch, cancel := obs.Subscribe()
	defer cancel()

	assert.Equal(t, 1, <-ch)
}

func TestObservable_SlowSubscriberSeesLatest(t *testing.T) {
	obs := NewObservable(0)
	ch, cancel := obs.Subscribe()
	defer cancel()

	for i := 1; i <= 5; i++ {
		obs.Set(i)
	}

	assert.Equal(t, 5, <-ch)
	assert.Equal(t, 5, obs.Get())

	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %d", v)
	default:
	}
}

func TestObservable_Update(t *testing.T) {
	obs := NewObservable([]string{"a"})

	got := obs.Update(func(s []string) []string { return append(s, "b") })
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{"a", "b"}, obs.Get())
}

func TestObservable_CancelClosesChannel(t *testing.T) {
	obs := NewObservable("x")
	ch, cancel := obs.Subscribe()
	<-ch

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	obs.Set("y")
	assert.Equal(t, "y", obs.Get())
}

func TestErrorMessage(t *testing.T) {
	assert.Empty(t, ErrorMessage(nil))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))

	wrapped := domainerrors.ErrGroupFull.WrapMessage("joining")
	assert.Equal(t, domainerrors.ErrGroupFull.Message(), ErrorMessage(wrapped))
}

func TestResource(t *testing.T) {
	ok := Success(3)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 3, ok.Data)

	failed := Failure[int](domainerrors.ErrNotGroupMember)
	require.True(t, failed.IsError())
	assert.Equal(t, domainerrors.ErrNotGroupMember.Message(), failed.Message)

	assert.True(t, Loading(0).IsLoading())
}
