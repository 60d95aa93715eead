package playback

import "fmt"

// Direction nudges a cue within its own list.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// MoveCue relocates the cue identified by cueID from one executor to a
// position in another, addressed by the destination cue's id. Ids are
// resolved to indices immediately before the move. Within one executor
// the cues swap positions; across executors the cue is removed from the
// source and inserted before the destination cue, or appended when no cue
// carries the destination id. After a cross-executor move both lists are
// repaired so no two cues in the same list share an id: colliding ids are
// shifted upward by one, scanning forward from the first collision, with
// the moved cue keeping its id.
func MoveCue(from, to *Executor, cueID, toCueID int) error {
	fromIdx := from.CueIndex(cueID)
	if fromIdx < 0 {
		return fmt.Errorf("executor %d: no cue with id %d", from.ID, cueID)
	}

	if from == to {
		toIdx := to.CueIndex(toCueID)
		if toIdx < 0 {
			// No such destination: take the cue out and append it.
			cue := from.Cues[fromIdx]
			from.Cues = append(from.Cues[:fromIdx], from.Cues[fromIdx+1:]...)
			from.Cues = append(from.Cues, cue)
			return nil
		}
		from.Cues[fromIdx], from.Cues[toIdx] = from.Cues[toIdx], from.Cues[fromIdx]
		return nil
	}

	cue := from.Cues[fromIdx]
	from.Cues = append(from.Cues[:fromIdx], from.Cues[fromIdx+1:]...)

	insertIdx := to.CueIndex(toCueID)
	if insertIdx < 0 {
		insertIdx = len(to.Cues)
	}
	to.Cues = append(to.Cues, Cue{})
	copy(to.Cues[insertIdx+1:], to.Cues[insertIdx:])
	to.Cues[insertIdx] = cue

	repairCueIDs(from.Cues, -1)
	repairCueIDs(to.Cues, insertIdx)
	return nil
}

// repairCueIDs restores per-list id uniqueness after a move. The cue at
// protectedIdx (the one that just arrived, -1 for none) keeps its id;
// every other cue is scanned in list order and shifted upward past any id
// already taken.
func repairCueIDs(cues []Cue, protectedIdx int) {
	seen := make(map[int]bool, len(cues))
	if protectedIdx >= 0 && protectedIdx < len(cues) {
		seen[cues[protectedIdx].ID] = true
	}
	for i := range cues {
		if i == protectedIdx {
			continue
		}
		for seen[cues[i].ID] {
			cues[i].ID++
		}
		seen[cues[i].ID] = true
	}
}

// NudgeCue rotates the cue with the given id one position up or down
// within its executor, wrapping modulo the list length.
func NudgeCue(e *Executor, cueID int, dir Direction) error {
	idx := e.CueIndex(cueID)
	if idx < 0 {
		return fmt.Errorf("executor %d: no cue with id %d", e.ID, cueID)
	}
	n := len(e.Cues)
	if n < 2 {
		return nil
	}
	var other int
	if dir == Up {
		other = (idx + 1) % n
	} else {
		other = (idx - 1 + n) % n
	}
	e.Cues[idx], e.Cues[other] = e.Cues[other], e.Cues[idx]
	return nil
}
