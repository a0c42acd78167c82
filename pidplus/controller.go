// Package pidplus assembles the base pid package with the event and
// dispatcher packages into the extensible controller: every setpoint
// write and every tick passes through the attached modifier chain
// before (and, for a tick, during) the underlying PID math runs.
package pidplus

import (
	"errors"
	"math"

	"pidplus/dispatcher"
	"pidplus/event"
	"pidplus/modifier"
	"pidplus/pid"
	"pidplus/pidctl"
)

// Controller is a PID controller wired through an ordered chain of
// modifiers. It satisfies event.Controller and dispatcher.Nester so that
// modifiers and the dispatcher can address it without pidplus importing
// either of those packages' consumers.
type Controller struct {
	base      *pid.PID
	modifiers []modifier.Modifier
	depth     int

	dtDefault *float64
	outputMin float64
	outputMax float64

	lastP, lastI, lastD float64
	hasLastPID          bool
}

// New builds a Controller with the given gains and attaches mods in
// order: each modifier sees its own Attached event; one that raises
// pidctl.HookStop causes the modifiers after it in this pass to see a
// HookStopped in place of their own Attached, and one that raises any
// other error fails construction after the same fanout. Once the attach
// pass completes, a single InitialConditions event (pv=0, setpoint=0)
// is dispatched through the full chain.
//
// dtDefault preconfigures the dt used by Calculate calls that omit one;
// pass nil to require every Calculate call to supply its own dt.
func New(kp, ki, kd float64, dtDefault *float64, mods ...modifier.Modifier) (*Controller, error) {
	c := &Controller{
		base:      pid.New(kp, ki, kd),
		modifiers: mods,
		dtDefault: dtDefault,
		outputMin: math.Inf(-1),
		outputMax: math.Inf(1),
	}

	for i, m := range mods {
		ev := event.NewAttached(c)
		err := m.Handle(ev)
		if err == nil {
			continue
		}
		if errors.Is(err, pidctl.HookStop) {
			stopped := event.NewHookStopped(ev, m, i, dispatcher.Refs(mods))
			if ferr := dispatcher.ContinueFrom(stopped, mods, i+1); ferr != nil {
				return nil, ferr
			}
			break
		}
		failure := event.NewFailure(ev, err, m, i, dispatcher.Refs(mods))
		_ = dispatcher.ContinueFrom(failure, mods, i+1)
		return nil, err
	}

	zeroPV, zeroSetpoint := 0.0, 0.0
	if err := c.InitialConditions(&zeroPV, &zeroSetpoint); err != nil {
		return nil, err
	}
	return c, nil
}

// GetGains returns the controller's gains.
func (c *Controller) GetGains() (kp, ki, kd float64) {
	return c.base.GetGains()
}

// SetGains updates the controller's gains directly; gain changes are not
// routed through the modifier chain.
func (c *Controller) SetGains(kp, ki, kd float64) {
	c.base.SetGains(kp, ki, kd)
}

// SetOutputLimits bounds the value Calculate returns to [min, max]. An
// invalid pair (min > max) is ignored. Limits default to
// (-Inf, +Inf), i.e. no clamping, until set.
func (c *Controller) SetOutputLimits(min, max float64) {
	if min > max {
		return
	}
	c.outputMin, c.outputMax = min, max
}

// GetOutputLimits returns the controller's current output limits.
func (c *Controller) GetOutputLimits() (min, max float64) {
	return c.outputMin, c.outputMax
}

// Setpoint returns the current setpoint. Implements event.Controller.
func (c *Controller) Setpoint() float64 {
	return c.base.Setpoint()
}

// Integration returns the accumulated integral term. Implements
// event.Controller.
func (c *Controller) Integration() float64 {
	return c.base.Integration()
}

// SetIntegration overwrites the accumulated integral term. Implements
// event.Controller; used by modifiers such as I_Windup and I_SetpointReset.
func (c *Controller) SetIntegration(v float64) {
	c.base.SetIntegration(v)
}

// PV returns the process variable the next tick's derivative measures
// against. Implements event.Controller.
func (c *Controller) PV() float64 {
	return c.base.PV()
}

// Modifiers returns the controller's attached modifiers in dispatch
// order.
func (c *Controller) Modifiers() []modifier.Modifier {
	return c.modifiers
}

// LastPID returns the unweighted (p, i, d) terms from the most recent
// Calculate call. ok is false before the first tick.
func (c *Controller) LastPID() (p, i, d float64, ok bool) {
	return c.lastP, c.lastI, c.lastD, c.hasLastPID
}

// Enter records entry into a nested event dispatch and returns the new
// depth. Implements dispatcher.Nester.
func (c *Controller) Enter() int {
	c.depth++
	return c.depth
}

// Exit records exit from a nested event dispatch. Implements
// dispatcher.Nester.
func (c *Controller) Exit() {
	c.depth--
}

// Depth returns the controller's current event-nesting depth, read by
// EventPrint to indent nested events.
func (c *Controller) Depth() int {
	return c.depth
}

// SetSetpoint dispatches a SetpointChange event and, absent a stopping
// error, stores the event's resolved value as the new setpoint.
func (c *Controller) SetSetpoint(sp float64) error {
	ev := event.NewSetpointChange(c, c.base.Setpoint(), sp, false)
	if err := dispatcher.Dispatch(ev, c.modifiers, c); err != nil {
		return err
	}
	c.base.SetSetpoint(ev.Resolved())
	return nil
}

// SetSetpointInternal re-issues a SetpointChange for a synthetic,
// modifier-originated setpoint write (SetpointRamp's interpolated
// steps), so history/print observers see every intermediate value. A
// modifier recognizes and ignores the echo via SetpointChange.Internal.
func (c *Controller) SetSetpointInternal(sp float64) error {
	ev := event.NewSetpointChange(c, c.base.Setpoint(), sp, true)
	if err := dispatcher.Dispatch(ev, c.modifiers, c); err != nil {
		return err
	}
	c.base.SetSetpoint(ev.Resolved())
	return nil
}

// InitialConditions applies pv and/or setpoint (nil leaves the current
// value unchanged except that, as in the base package, the integral and
// last-pid state always reset), then dispatches a single
// InitialConditions event. Unlike SetSetpoint, no SetpointChange event
// is involved.
func (c *Controller) InitialConditions(pv, setpoint *float64) error {
	c.base.InitialConditions(pv, setpoint)
	c.hasLastPID = false
	ev := event.NewInitialConditions(c, setpoint, pv)
	return dispatcher.Dispatch(ev, c.modifiers, c)
}

// Calculate runs one control tick: BaseTerms, then (once e, p, i and d
// are all resolved, applying any internal default a modifier did not
// already supply) ModifyTerms, then CalculateU. A modifier that fills i
// or d during BaseTerms suppresses the matching internal side effect —
// the integral no longer advances, or the derivative reference no
// longer moves — for this tick only. dt may be omitted (zero arguments)
// to use the dt supplied to New; passing dt explicitly overrides it for
// just this call. Calculate fails only when dt is omitted and no default
// was configured.
func (c *Controller) Calculate(pv float64, dt ...float64) (float64, error) {
	d, err := c.resolveDt(dt)
	if err != nil {
		return 0, err
	}

	bag := event.NewBag()

	base := event.NewBaseTerms(c, d, bag)
	if err := dispatcher.Dispatch(base, c.modifiers, c); err != nil {
		return 0, err
	}

	e := c.resolveE(base, pv)
	p := c.resolveP(base, e)
	iTerm := c.resolveI(base, e, d)
	dTerm := c.resolveD(base, pv, d)

	modify := event.NewModifyTerms(c, d, e, &p, &iTerm, &dTerm, base.U(), bag)
	if err := dispatcher.Dispatch(modify, c.modifiers, c); err != nil {
		return 0, err
	}
	p, iTerm, dTerm = *modify.P(), *modify.I(), *modify.D()

	u := modify.U()
	if u == nil {
		kp, ki, kd := c.base.GetGains()
		def := kp*p + ki*iTerm + kd*dTerm
		u = &def
	}

	calc := event.NewCalculateU(c, d, e, p, iTerm, dTerm, u, bag)
	if err := dispatcher.Dispatch(calc, c.modifiers, c); err != nil {
		return 0, err
	}

	final := 0.0
	if calc.U() != nil {
		final = c.clampOutput(*calc.U())
	}

	c.lastP, c.lastI, c.lastD = p, iTerm, dTerm
	c.hasLastPID = true

	return final, nil
}

// resolveDt mirrors pid.PID.resolveDt: an explicit dt wins, falling back
// to the configured default, and failing only when neither is present.
func (c *Controller) resolveDt(dt []float64) (float64, error) {
	if len(dt) > 0 {
		return dt[0], nil
	}
	if c.dtDefault != nil {
		return *c.dtDefault, nil
	}
	return 0, pidctl.NewUsageError("pidplus: dt not supplied and no default configured")
}

// clampOutput bounds v to the configured output limits. The default
// limits are (-Inf, +Inf), so this is a no-op until SetOutputLimits is
// called; a non-finite v still clamps once limits are configured, since
// configuring limits is an explicit opt-in to a bounded output range.
func (c *Controller) clampOutput(v float64) float64 {
	if v > c.outputMax {
		return c.outputMax
	}
	if v < c.outputMin {
		return c.outputMin
	}
	return v
}

func (c *Controller) resolveE(base *event.BaseTerms, pv float64) float64 {
	if base.E() != nil {
		return *base.E()
	}
	return c.base.Setpoint() - pv
}

func (c *Controller) resolveP(base *event.BaseTerms, e float64) float64 {
	if base.P() != nil {
		return *base.P()
	}
	return e
}

func (c *Controller) resolveI(base *event.BaseTerms, e, dt float64) float64 {
	if base.I() != nil {
		return *base.I()
	}
	v := c.base.Integration() + e*dt
	c.base.SetIntegration(v)
	return v
}

func (c *Controller) resolveD(base *event.BaseTerms, pv, dt float64) float64 {
	if base.D() != nil {
		return *base.D()
	}
	d := -(pv - c.base.PV()) / dt
	c.base.SetPV(pv)
	return d
}
