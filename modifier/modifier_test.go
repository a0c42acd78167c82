package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pidplus/event"
	"pidplus/feedback"
	"pidplus/feedforward"
	"pidplus/filter"
	"pidplus/interplut"
	"pidplus/modifier"
	"pidplus/pidctl"
	"pidplus/pidplus"
)

func TestBangBangClassification(t *testing.T) {
	bb := modifier.NewBangBang(
		modifier.WithOnThreshold(ptr(5.0)),
		modifier.WithOffThreshold(ptr(-5.0)),
		modifier.WithOnValue(1),
		modifier.WithOffValue(-1),
	)

	ctrl, err := pidplus.New(0, 0, 0, nil, ubashU{u: 10}, bb)
	require.NoError(t, err)
	u, err := ctrl.Calculate(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, u)
}

func TestBangBangDeadBandLeavesUUnchangedWithoutDeadValue(t *testing.T) {
	bb := modifier.NewBangBang(
		modifier.WithOnThreshold(ptr(5.0)),
		modifier.WithOffThreshold(ptr(-5.0)),
	)

	ctrl, err := pidplus.New(0, 0, 0, nil, ubashU{u: 0}, bb)
	require.NoError(t, err)
	u, err := ctrl.Calculate(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, u)
}

func TestBangBangDeadValue(t *testing.T) {
	bb := modifier.NewBangBang(
		modifier.WithOnThreshold(ptr(5.0)),
		modifier.WithOffThreshold(ptr(-5.0)),
		modifier.WithDeadValue(42),
	)

	ctrl, err := pidplus.New(0, 0, 0, nil, ubashU{u: 0}, bb)
	require.NoError(t, err)
	u, err := ctrl.Calculate(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, u)
}

func TestOnceRejectsSecondAttachment(t *testing.T) {
	ramp := modifier.NewSetpointRamp(1)
	_, err := pidplus.New(1, 0, 0, nil, ramp)
	require.NoError(t, err)

	_, err = pidplus.New(1, 0, 0, nil, ramp)
	require.Error(t, err)

	var usageErr *pidctl.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestPIDHistoryBoundedFIFO(t *testing.T) {
	hist := modifier.NewPIDHistory(2, false)
	ctrl, err := pidplus.New(1, 0, 0, nil, hist)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := ctrl.Calculate(0, 1)
		require.NoError(t, err)
	}

	assert.LessOrEqual(t, len(hist.Entries()), 2)
}

func TestPIDHistoryDetailSnapshots(t *testing.T) {
	hist := modifier.NewPIDHistory(0, true)
	ctrl, err := pidplus.New(1, 0, 0, nil, hist)
	require.NoError(t, err)
	require.NoError(t, ctrl.SetSetpoint(3))

	_, err = ctrl.Calculate(1, 1)
	require.NoError(t, err)

	found := false
	for _, e := range hist.Entries() {
		if e.Event.Kind() == event.KindCalculateU {
			require.NotNil(t, e.Snapshot)
			assert.Equal(t, 3.0, e.Snapshot.Setpoint)
			found = true
		}
	}
	assert.True(t, found, "expected a CalculateU entry with a detail snapshot")
}

func TestDGainScheduleScalesDerivative(t *testing.T) {
	lut := interplut.New()
	lut.Add(0, 1)
	lut.Add(10, 2)
	require.NoError(t, lut.CreateLUT())

	sched := modifier.NewDGainSchedule(lut)
	ctrl, err := pidplus.New(0, 0, 1, nil, sched)
	require.NoError(t, err)
	require.NoError(t, ctrl.SetSetpoint(0))

	_, err = ctrl.Calculate(0, 1)
	require.NoError(t, err)
	// second tick has a non-zero derivative to scale
	u, err := ctrl.Calculate(5, 1)
	require.NoError(t, err)
	assert.NotEqual(t, 0.0, u)
}

func TestFeedForwardTermAddsToU(t *testing.T) {
	ff := feedforward.New(0, 2.0, 0)
	term := modifier.NewFeedForwardTerm(ff)
	term.SetReference(0, 3, 0)

	ctrl, err := pidplus.New(0, 0, 0, nil, term)
	require.NoError(t, err)

	u, err := ctrl.Calculate(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, u, 1e-9)
}

func TestFeedbackTermAddsToU(t *testing.T) {
	fsf := feedback.New(feedback.Values{0.0, 2.0})
	term := modifier.NewFeedbackTerm(fsf)
	term.SetState(feedback.Values{0, 3}, feedback.Values{0, 0})

	ctrl, err := pidplus.New(0, 0, 0, nil, term)
	require.NoError(t, err)

	u, err := ctrl.Calculate(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, u, 1e-9)
}

func TestFeedbackTermNoContributionBeforeFirstSetState(t *testing.T) {
	fsf := feedback.New(feedback.Values{1.0})
	term := modifier.NewFeedbackTerm(fsf)

	ctrl, err := pidplus.New(0, 0, 0, nil, term)
	require.NoError(t, err)

	u, err := ctrl.Calculate(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, u)
}

func TestDerivativeFilterSmoothsD(t *testing.T) {
	lp, err := filter.NewLowPassFilter(0.5)
	require.NoError(t, err)

	df := modifier.NewDerivativeFilter(lp)
	ctrl, err := pidplus.New(0, 0, 1, nil, df)
	require.NoError(t, err)

	_, err = ctrl.Calculate(0, 1)
	require.NoError(t, err)
	u, err := ctrl.Calculate(10, 1)
	require.NoError(t, err)

	// raw derivative would be -10; the filter pulls it toward 0 on the
	// first smoothed sample.
	assert.Greater(t, u, -10.0)
}

func TestRenderFieldOrderAndKind(t *testing.T) {
	pid := &fakeCtrl{}
	ev := event.NewSetpointChange(pid, 1, 2, false)
	s := modifier.Render(ev)
	assert.Contains(t, s, "SetpointChange(")
	assert.Contains(t, s, "sp_from=1")
	assert.Contains(t, s, "sp_to=2")
}

type fakeCtrl struct{}

func (f *fakeCtrl) Integration() float64     { return 0 }
func (f *fakeCtrl) SetIntegration(v float64) {}
func (f *fakeCtrl) Setpoint() float64        { return 0 }
func (f *fakeCtrl) PV() float64              { return 0 }

// ubashU unconditionally sets u during BaseTerms, so later stages (e.g.
// BangBang on CalculateU) have a known value to classify.
type ubashU struct{ u float64 }

func (ubashU) String() string { return "UBashU" }
func (m ubashU) Handle(ev event.Event) error {
	if bt, ok := ev.(*event.BaseTerms); ok {
		bt.SetU(m.u)
	}
	return nil
}

func ptr(v float64) *float64 { return &v }
