package sampler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amontanana/safety-sentinel/internal/domain/proximity"
	"github.com/amontanana/safety-sentinel/internal/driver"
	"github.com/amontanana/safety-sentinel/internal/notify"
)

var errChannel = errors.New("channel read failure")

// fakeReader serves scripted per-channel raw values.
type fakeReader struct {
	// values maps channels to raw samples.
	values map[driver.Channel]uint16
	// err fails every read when set.
	err error
}

// ReadChannel returns the scripted value for the channel.
func (f *fakeReader) ReadChannel(_ context.Context, ch driver.Channel) (uint16, error) {
	if f.err != nil {
		return 0, f.err
	}

	return f.values[ch], nil
}

// recordingSerial collects every sent line.
type recordingSerial struct {
	// lines stores sent payloads in order.
	lines []string
	// mu guards lines.
	mu sync.Mutex
}

// Send records the line.
func (r *recordingSerial) Send(line []byte) error {
	r.mu.Lock()
	r.lines = append(r.lines, string(line))
	r.mu.Unlock()

	return nil
}

// sent returns a copy of the recorded lines.
func (r *recordingSerial) sent() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.lines...)
}

// defaultCalibration mirrors the documented accelerometer constants.
func defaultCalibration() proximity.Calibration {
	return proximity.Calibration{Offset: 1.65, Scale: 0.3, Trigger: 4}
}

// fallValues is a three-axis spike summing to an indicator of roughly 8.
func fallValues() map[driver.Channel]uint16 {
	return map[driver.Channel]uint16{
		driver.ChannelX: 2450,
		driver.ChannelY: 2450,
		driver.ChannelZ: 2450,
	}
}

// restingValues keeps the indicator near 1 g, below the trigger.
func restingValues() map[driver.Channel]uint16 {
	return map[driver.Channel]uint16{
		driver.ChannelX: 1650,
		driver.ChannelY: 1650,
		driver.ChannelZ: 1950,
	}
}

// TestSampleEmitsAlertOnFall verifies the documented end-to-end scenario:
// raw 2450 on all axes emits exactly one alert for that wake.
func TestSampleEmitsAlertOnFall(t *testing.T) {
	t.Parallel()

	serial := new(recordingSerial)
	task := New(&fakeReader{values: fallValues()}, serial, notify.NewNotifier(), defaultCalibration())

	task.sample(context.Background())

	require.Equal(t, []string{"fall detected\r\n"}, serial.sent())
}

// TestSampleQuietAtRest verifies no alert is sent for resting values.
func TestSampleQuietAtRest(t *testing.T) {
	t.Parallel()

	serial := new(recordingSerial)
	task := New(&fakeReader{values: restingValues()}, serial, notify.NewNotifier(), defaultCalibration())

	task.sample(context.Background())

	require.Empty(t, serial.sent())
}

// TestSampleExactlyAtTriggerDoesNotFire covers the strict inequality: an
// indicator exactly at the trigger must not alert. With default calibration,
// raw 2050 per axis gives (2.05-1.65)/0.3 = 4/3 per axis, summing to 4.
func TestSampleExactlyAtTriggerDoesNotFire(t *testing.T) {
	t.Parallel()

	values := map[driver.Channel]uint16{
		driver.ChannelX: 2050,
		driver.ChannelY: 2050,
		driver.ChannelZ: 2050,
	}

	cal := defaultCalibration()
	require.InDelta(t, cal.Trigger, cal.FallIndicator(2050, 2050, 2050), 1e-9)

	serial := new(recordingSerial)
	task := New(&fakeReader{values: values}, serial, notify.NewNotifier(), cal)

	task.sample(context.Background())

	require.Empty(t, serial.sent())
}

// TestSampleRepeatsWhileConditionPersists documents the no-debounce behavior:
// every qualifying wake emits a new alert.
func TestSampleRepeatsWhileConditionPersists(t *testing.T) {
	t.Parallel()

	serial := new(recordingSerial)
	task := New(&fakeReader{values: fallValues()}, serial, notify.NewNotifier(), defaultCalibration())

	ctx := context.Background()
	task.sample(ctx)
	task.sample(ctx)
	task.sample(ctx)

	require.Len(t, serial.sent(), 3)
}

// TestSampleReadErrorIsNeutral verifies failed reads substitute the zero-g
// value and therefore never alert on their own.
func TestSampleReadErrorIsNeutral(t *testing.T) {
	t.Parallel()

	serial := new(recordingSerial)
	task := New(&fakeReader{err: errChannel}, serial, notify.NewNotifier(), defaultCalibration())

	task.sample(context.Background())

	require.Empty(t, serial.sent())
}

// TestRunWakesOncePerSignalBurst wires the task to a notifier and checks a
// burst of timer signals before the task is scheduled produces exactly one
// sampling pass.
func TestRunWakesOncePerSignalBurst(t *testing.T) {
	t.Parallel()

	serial := new(recordingSerial)
	notifier := notify.NewNotifier()
	task := New(&fakeReader{values: fallValues()}, serial, notifier, defaultCalibration())

	// Burst before the task ever runs: must coalesce to one wake.
	for i := 0; i < 5; i++ {
		notifier.Signal()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})

	go func() {
		task.Run(ctx)
		close(done)
	}()

	<-done
	require.Len(t, serial.sent(), 1)
}
