// Package pid implements the basic PID control calculation: three
// scaled terms (proportional, integral, derivative-on-measurement)
// summed every tick. It carries no clock of its own — every tick is
// driven by a dt the caller supplies, optionally defaulted once at
// construction — and no event pipeline; pidplus.Controller builds the
// extensible, event-driven controller on top of this type.
package pid

import (
	"log/slog"
	"math"

	"pidplus/pidctl"
)

// Option configures a PID at construction time.
type Option func(*PID)

// PID is the base proportional-integral-derivative controller.
type PID struct {
	kp float64
	ki float64
	kd float64

	setpoint float64

	integration float64
	prevPV      float64
	prevE       float64

	hasLastPID bool
	lastP      float64
	lastI      float64
	lastD      float64

	dtDefault *float64
}

// New creates a PID controller with the given gains. Setpoint, pv,
// integration, prevPV and prevE all start at zero.
func New(kp, ki, kd float64, opts ...Option) *PID {
	p := &PID{kp: kp, ki: ki, kd: kd}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithDt preconfigures the dt used by Calculate calls that omit one.
func WithDt(dt float64) Option {
	return func(p *PID) {
		p.dtDefault = &dt
	}
}

// WithDampening configures the derivative gain (kd) from desired
// dampening characteristics, with an optional percent overshoot (po).
// If po is 0, critical dampening is used.
func WithDampening(ka, kv, po float64) Option {
	return func(p *PID) {
		if p.kp < kv*kv/(4*ka) {
			slog.Error("invalid kp, kv, and ka values for pid.WithDampening",
				"kp", p.kp,
				"kv", kv,
				"ka", ka,
				"kv^2 / (4*ka)", kv*kv/(4*ka),
			)
			return
		}

		if po == 0 {
			p.kd = 2*math.Sqrt(ka*kv) - ka
			return
		}

		po = math.Max(po/100, 0.01)
		poLog := math.Log(po)
		zeta := -poLog / math.Sqrt(math.Pi*math.Pi+poLog*poLog)
		p.kd = 2*zeta*math.Sqrt(ka*kv) - kv
	}
}

// GetGains returns the current gains.
func (p *PID) GetGains() (kp, ki, kd float64) {
	return p.kp, p.ki, p.kd
}

// SetGains updates the gains.
func (p *PID) SetGains(kp, ki, kd float64) {
	p.kp = kp
	p.ki = ki
	p.kd = kd
}

// Setpoint returns the current setpoint.
func (p *PID) Setpoint() float64 {
	return p.setpoint
}

// SetSetpoint assigns the setpoint directly: the base PID does no
// ramping and emits no event, unlike pidplus.Controller.
func (p *PID) SetSetpoint(setpoint float64) {
	p.setpoint = setpoint
}

// Integration returns the accumulated integral term.
func (p *PID) Integration() float64 {
	return p.integration
}

// SetIntegration overwrites the accumulated integral term, used by
// modifiers (via pidplus) that clamp or reset accumulation.
func (p *PID) SetIntegration(v float64) {
	p.integration = v
}

// PV returns the most recently observed process variable (the prior pv
// the next derivative calculation measures against).
func (p *PID) PV() float64 {
	return p.prevPV
}

// SetPV overwrites the prior process variable, used by pidplus.Controller
// to advance (or, when a modifier supplies its own derivative term, to
// withhold advancing) the derivative reference outside of Calculate.
func (p *PID) SetPV(v float64) {
	p.prevPV = v
}

// LastPID returns the unweighted (p, i, d) terms from the most recent
// Calculate call. ok is false before the first call.
func (p *PID) LastPID() (pTerm, iTerm, dTerm float64, ok bool) {
	return p.lastP, p.lastI, p.lastD, p.hasLastPID
}

// InitialConditions applies pv and/or setpoint if non-nil, resets the
// integral to zero, resets the derivative reference so the next tick's
// derivative is zero, and clears LastPID.
func (p *PID) InitialConditions(pv, setpoint *float64) {
	if setpoint != nil {
		p.setpoint = *setpoint
	}
	if pv != nil {
		p.prevPV = *pv
	}
	p.integration = 0
	p.hasLastPID = false
}

// Calculate runs one control tick for the given process variable and
// returns the control output u. dt may be omitted (zero arguments) to
// use the dt configured via WithDt; passing dt explicitly overrides it
// for just this call. Calculate fails only when dt is omitted and no
// default was configured — it never clamps or rejects a non-finite
// result.
func (p *PID) Calculate(pv float64, dt ...float64) (float64, error) {
	d, err := p.resolveDt(dt)
	if err != nil {
		return 0, err
	}

	e := p.setpoint - pv
	p.integration += e * d
	dTerm := -(pv - p.prevPV) / d
	pTerm := e

	u := p.kp*pTerm + p.ki*p.integration + p.kd*dTerm

	p.lastP, p.lastI, p.lastD = pTerm, p.integration, dTerm
	p.hasLastPID = true
	p.prevPV = pv
	p.prevE = e

	return u, nil
}

func (p *PID) resolveDt(dt []float64) (float64, error) {
	if len(dt) > 0 {
		return dt[0], nil
	}
	if p.dtDefault != nil {
		return *p.dtDefault, nil
	}
	return 0, pidctl.NewUsageError("pid: dt not supplied and no default configured")
}
