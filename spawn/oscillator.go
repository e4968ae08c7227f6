package spawn

// Oscillator is a triangle wave bouncing between Min and Max by Step
// Each Next returns the current value then advances; the sequence for (2, 4, 1) is
// 2 3 4 4 3 2 2 3 ... with both bounds emitted twice at the turn, matching a chained
// ascending and descending range
type Oscillator struct {
	Min, Max, Step float64

	value  float64
	rising bool
	turned bool
}

// NewOscillator creates an oscillator positioned at min, rising
func NewOscillator(min, max, step float64) *Oscillator {
	o := &Oscillator{Min: min, Max: max, Step: step}
	o.Reset()
	return o
}

// Reset restarts the wave at Min, rising
func (o *Oscillator) Reset() {
	o.value = o.Min
	o.rising = true
	o.turned = false
}

// Value returns the value the next call to Next will emit
func (o *Oscillator) Value() float64 {
	return o.value
}

// Next emits the current value and advances one step
func (o *Oscillator) Next() float64 {
	v := o.value

	if o.rising {
		if o.value >= o.Max {
			if !o.turned {
				o.turned = true
				o.value = o.Max
				return v
			}
			o.turned = false
			o.rising = false
			o.value = o.Max - o.Step
			return v
		}
		o.value = min(o.value+o.Step, o.Max)
		return v
	}

	if o.value <= o.Min {
		if !o.turned {
			o.turned = true
			o.value = o.Min
			return v
		}
		o.turned = false
		o.rising = true
		o.value = o.Min + o.Step
		return v
	}
	o.value = max(o.value-o.Step, o.Min)
	return v
}
