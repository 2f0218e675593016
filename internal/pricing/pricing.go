// Package pricing computes parking fees from stationing duration.
// The engine is a fixed ascending tier table evaluated first-match;
// it performs no validation and keeps no state.
package pricing

// tier pairs an inclusive upper bound in hours with the fee charged
// for any duration up to that bound.
type tier struct {
    UpToHours float64
    Fee       uint32
}

// tiers is evaluated in order; the first bound the duration does
// not exceed wins.  Durations beyond the last bound, however large,
// all fall into the flat overflow fee.  There is deliberately no
// distinct tier between 8 and 24 hours: anything above 8 costs the
// same flat amount.
var tiers = []tier{
    {UpToHours: 0.5, Fee: 3},
    {UpToHours: 1, Fee: 5},
    {UpToHours: 2, Fee: 10},
    {UpToHours: 4, Fee: 15},
    {UpToHours: 8, Fee: 25},
}

// overflowFee applies to every duration above the last tier bound.
const overflowFee uint32 = 40

// Price returns the fee owed for parking the given number of hours.
// Bounds are inclusive: exactly 2 hours costs the 2-hour fee.  The
// engine never rejects a duration; oversized values simply land in
// the overflow tier.
func Price(durationHours float64) uint32 {
    for _, t := range tiers {
        if durationHours <= t.UpToHours {
            return t.Fee
        }
    }
    return overflowFee
}
