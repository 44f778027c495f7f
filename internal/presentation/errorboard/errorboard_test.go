package errorboard

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"loan-approval-simulator/internal/models"
)

func incomeError() models.FieldErrors {
	errs := models.FieldErrors{}
	errs.Add(models.NewParseError(models.FieldIncome))
	return errs
}

func shown(b *Board, field models.Field) bool {
	_, ok := b.Message(field)
	return ok
}

func TestBoard_ClearsAfterTimeout(t *testing.T) {
	var cleared atomic.Int32
	board := New(30*time.Millisecond, func() { cleared.Add(1) })

	board.Show(incomeError())

	msg, ok := board.Message(models.FieldIncome)
	assert.True(t, ok)
	assert.Equal(t, "not a number", msg)

	assert.Eventually(t, func() bool { return !shown(board, models.FieldIncome) }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return cleared.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestBoard_NewPassSupersedesPendingClear(t *testing.T) {
	var cleared atomic.Int32
	board := New(200*time.Millisecond, func() { cleared.Add(1) })

	board.Show(incomeError())
	time.Sleep(120 * time.Millisecond)

	loanErr := models.FieldErrors{}
	loanErr.Add(models.NewRangeError(models.FieldLoan, "must be > 0"))
	board.Show(loanErr)

	// The first timer would have fired by now; the second pass must still be visible.
	time.Sleep(120 * time.Millisecond)
	assert.False(t, shown(board, models.FieldIncome))
	assert.True(t, shown(board, models.FieldLoan))

	assert.Eventually(t, func() bool { return !shown(board, models.FieldLoan) }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return cleared.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestBoard_EmptyShowClears(t *testing.T) {
	board := New(time.Minute, nil)

	board.Show(incomeError())
	board.Show(models.FieldErrors{})

	assert.False(t, shown(board, models.FieldIncome))
}

func TestBoard_ResetCancelsCallback(t *testing.T) {
	var cleared atomic.Int32
	board := New(20*time.Millisecond, func() { cleared.Add(1) })

	board.Show(incomeError())
	board.Reset()

	assert.False(t, shown(board, models.FieldIncome))
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), cleared.Load())
}

func TestBoard_ShowCopiesErrors(t *testing.T) {
	board := New(time.Minute, nil)
	errs := incomeError()
	board.Show(errs)

	delete(errs, models.FieldIncome)

	assert.True(t, shown(board, models.FieldIncome))
	board.Reset()
}

func TestNew_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, New(0, nil).Timeout())
	assert.Equal(t, time.Second, New(time.Second, nil).Timeout())
}
