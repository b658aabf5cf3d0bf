package main

import "fmt"

// CellEntry is the derived per-cell view of the puzzle structure:
// which word(s) cover the cell, the letter that belongs there, and
// whether the cell starts a word.
type CellEntry struct {
	Row           int      `json:"row"`
	Col           int      `json:"col"`
	ExpectedChar  string   `json:"expected_char"`
	OwningWordIDs []string `json:"owning_word_ids"`
	IsWordStart   bool     `json:"is_word_start"`
}

// GridIndex maps a cell key ("row-col") to its entry. It is derived
// from a PuzzleDocument and rebuilt whenever the puzzle changes; it is
// never mutated in place.
type GridIndex map[string]*CellEntry

// cellKey builds the canonical key for a grid position.
func cellKey(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}

// BuildGridIndex walks every placement's cells and merges them into a
// per-cell lookup. On a crossing-letter conflict the first assignment
// wins, so a bad puzzle still renders deterministically.
func BuildGridIndex(p *PuzzleDocument) GridIndex {
	idx := make(GridIndex)
	for i := range p.Words {
		w := &p.Words[i]
		runes := []rune(w.Answer)
		for j, r := range runes {
			row, col := w.CellAt(j)
			if row < 0 || col < 0 || row >= p.Height || col >= p.Width {
				continue
			}
			key := cellKey(row, col)
			e, ok := idx[key]
			if !ok {
				e = &CellEntry{Row: row, Col: col, ExpectedChar: string(r)}
				idx[key] = e
			}
			e.OwningWordIDs = append(e.OwningWordIDs, w.ID)
			if j == 0 {
				e.IsWordStart = true
			}
		}
	}
	return idx
}

// owns reports whether the cell belongs to the given word.
func (e *CellEntry) owns(wordID string) bool {
	for _, id := range e.OwningWordIDs {
		if id == wordID {
			return true
		}
	}
	return false
}
