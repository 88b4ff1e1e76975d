package dice

import "sort"

// evalRoll executes a die roll under its modifier policy.
func (ev *evaluator) evalRoll(r *Roll) int {
	if r.Mod != nil {
		switch r.Mod.Kind {
		case ChooseHigh:
			return ev.chooseRoll(r, func(a, b int) bool { return a > b })
		case ChooseLow:
			return ev.chooseRoll(r, func(a, b int) bool { return a < b })
		case RerollBelow:
			return ev.rerollBelowRoll(r)
		case Explode:
			return ev.explodingRoll(r)
		}
	}
	return ev.basicRoll(r)
}

// basicRoll draws each die once and sums.
func (ev *evaluator) basicRoll(r *Roll) int {
	ev.emit(Event{Kind: EventRollStarted, Roll: *r})
	total := 0
	for i := 0; i < r.Count; i++ {
		v := ev.src.Next(r.Sides)
		ev.emit(Event{Kind: EventDrew, Roll: *r, Value: v})
		total += v
	}
	ev.emit(Event{Kind: EventRollFinished, Roll: *r, Value: total})
	return total
}

// chooseRoll draws all Count dice while keeping only the N most extreme under
// better, using a running (N+1)-slot selection rather than a full sort of all
// Count draws. A keep-count of zero always totals zero; a keep-count at or
// above Count is caller error with an unspecified (but crash-free) result.
func (ev *evaluator) chooseRoll(r *Roll, better func(a, b int) bool) int {
	ev.emit(Event{Kind: EventRollStarted, Roll: *r})

	n := r.Mod.N
	kept := make([]int, 0, n+1)
	for i := 0; i < r.Count; i++ {
		v := ev.src.Next(r.Sides)
		ev.emit(Event{Kind: EventDrew, Roll: *r, Value: v})
		kept = append(kept, v)
		if len(kept) > n {
			sort.Slice(kept, func(a, b int) bool { return better(kept[a], kept[b]) })
			kept = kept[:n]
		}
	}

	ev.emit(Event{Kind: EventChose, Roll: *r, Kept: kept})
	total := 0
	for _, v := range kept {
		total += v
	}
	ev.emit(Event{Kind: EventRollFinished, Roll: *r, Value: total})
	return total
}

// rerollBelowRoll draws each die repeatedly until it lands strictly above the
// threshold, counting one post-threshold value per die. A threshold at or
// above the side count never terminates; see Eval.
func (ev *evaluator) rerollBelowRoll(r *Roll) int {
	ev.emit(Event{Kind: EventRollStarted, Roll: *r})

	threshold := r.Mod.N
	total := 0
	for i := 0; i < r.Count; i++ {
		v := ev.src.Next(r.Sides)
		for v <= threshold {
			ev.emit(Event{Kind: EventRerolled, Roll: *r, Value: v})
			v = ev.src.Next(r.Sides)
		}
		ev.emit(Event{Kind: EventDrew, Roll: *r, Value: v})
		total += v
	}

	ev.emit(Event{Kind: EventRollFinished, Roll: *r, Value: total})
	return total
}

// explodingRoll adds an extra draw to a die's own total whenever a draw meets
// the threshold, until one lands below it. A threshold at or below 1 never
// terminates; see Eval.
func (ev *evaluator) explodingRoll(r *Roll) int {
	ev.emit(Event{Kind: EventRollStarted, Roll: *r})

	threshold := r.Mod.N
	total := 0
	for i := 0; i < r.Count; i++ {
		v := ev.src.Next(r.Sides)
		ev.emit(Event{Kind: EventDrew, Roll: *r, Value: v})
		dieTotal := v
		for v >= threshold {
			v = ev.src.Next(r.Sides)
			ev.emit(Event{Kind: EventExploded, Roll: *r, Value: v})
			dieTotal += v
		}
		total += dieTotal
	}

	ev.emit(Event{Kind: EventRollFinished, Roll: *r, Value: total})
	return total
}
