package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_Now(t *testing.T) {
	at := time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC)
	assert.Equal(t, at, Fixed(at).Now())
}

func TestMonthBoundaries(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	leap := time.Date(2024, 2, 17, 23, 59, 0, 0, jakarta)
	assert.Equal(t, time.Date(2024, 2, 17, 0, 0, 0, 0, jakarta), StartOfDay(leap))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, jakarta), StartOfMonth(leap))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, jakarta), EndOfMonth(leap))

	dec := time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), EndOfMonth(dec))
}

func TestNew_UsesLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)
	assert.Equal(t, jakarta, New(jakarta).Now().Location())
}

func TestDateOf_KeepsLocalCalendarDay(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	// 00:30 in Jakarta is still the previous day in UTC
	early := time.Date(2024, 3, 11, 0, 30, 0, 0, jakarta)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), DateOf(early))
}
