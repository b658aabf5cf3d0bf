package main

import (
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

// Phase is the coarse lifecycle of a session. There is no HOME phase on
// the server: no session means the player is at the home screen.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
)

// winDelay separates the last solve from the WIN transition, so the
// reward computation runs after the final cells have been shown solved.
const winDelay = 1500 * time.Millisecond

// GameSession binds one puzzle, its derived grid index, and the mutable
// session state for a single player. All operations lock the session;
// each player acts sequentially but HTTP handlers are concurrent.
type GameSession struct {
	ID         string          `json:"id"`
	PlayerID   string          `json:"player_id"`
	AgeGroup   AgeGroup        `json:"age_group"`
	Difficulty Difficulty      `json:"difficulty"`
	Mode       GameMode        `json:"mode"`
	Puzzle     *PuzzleDocument `json:"puzzle"`
	Offline    bool            `json:"offline"`
	CreatedAt  time.Time       `json:"created_at"`

	index GridIndex
	state *SessionState
	phase Phase

	mu         sync.Mutex
	winPending bool
	winAfter   time.Duration
	onWin      func(*GameSession)
}

// NewGameSession creates a fresh session for a puzzle. The session state
// starts empty; the grid index is derived once since the puzzle is
// immutable for the session's lifetime.
func NewGameSession(playerID string, puzzle *PuzzleDocument, age AgeGroup, diff Difficulty) *GameSession {
	return &GameSession{
		ID:         generateID(),
		PlayerID:   playerID,
		AgeGroup:   age,
		Difficulty: diff,
		Mode:       ModeForAge(age),
		Puzzle:     puzzle,
		CreatedAt:  time.Now(),
		index:      BuildGridIndex(puzzle),
		state:      NewSessionState(),
		phase:      PhasePlaying,
		winAfter:   winDelay,
	}
}

// Restore rebuilds a session from a saved game. The restored state was
// written against the same puzzle, so the index stays consistent.
func (g *GameSession) Restore(state *SessionState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if state.SolvedWordIDs == nil {
		state.SolvedWordIDs = make(map[string]bool)
	}
	if state.UserInputs == nil {
		state.UserInputs = make(map[string]string)
	}
	g.state = state
	// A save taken between the last solve and the win timer still wins.
	g.checkWin()
}

// SetWinHandler registers the callback fired when the session reaches
// the WIN phase (after the win delay).
func (g *GameSession) SetWinHandler(fn func(*GameSession)) {
	g.mu.Lock()
	g.onWin = fn
	g.mu.Unlock()
}

// CurrentPhase returns the current lifecycle phase.
func (g *GameSession) CurrentPhase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Snapshot returns a copy of the session state for persistence.
func (g *GameSession) Snapshot() *SessionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	cp := NewSessionState()
	for id := range g.state.SolvedWordIDs {
		cp.SolvedWordIDs[id] = true
	}
	for k, v := range g.state.UserInputs {
		cp.UserInputs[k] = v
	}
	cp.ActiveWordID = g.state.ActiveWordID
	return cp
}

// Cells returns the display projection of the whole grid.
func (g *GameSession) Cells() []CellView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return projectGrid(g.index, g.state, g.Mode)
}

// ActiveWordID returns the current selection, empty when none.
func (g *GameSession) ActiveWordID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.ActiveWordID
}

// SolvedWordIDs returns the solved set as a slice.
func (g *GameSession) SolvedWordIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := make([]string, 0, len(g.state.SolvedWordIDs))
	for _, w := range g.Puzzle.Words {
		if g.state.SolvedWordIDs[w.ID] {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// SelectCell makes the first placement covering (row,col) the active
// word. Placement-list order decides when an across and a down word
// cross at the cell. No-op when no word covers the cell.
func (g *GameSession) SelectCell(row, col int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying {
		return false
	}
	for i := range g.Puzzle.Words {
		w := &g.Puzzle.Words[i]
		for j := 0; j < w.Length(); j++ {
			r, c := w.CellAt(j)
			if r == row && c == col {
				g.state.ActiveWordID = w.ID
				return true
			}
		}
	}
	return false
}

// SubmitWordDrop marks a word solved in DRAG_WORDS mode and backfills
// the word's cells with its letters, so display logic downstream does
// not care which mode produced the inputs. Idempotent: re-dropping a
// solved word changes nothing. An unknown id is a silent no-op.
func (g *GameSession) SubmitWordDrop(wordID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying || g.Mode != ModeDragWords {
		return false
	}
	w := g.Puzzle.WordByID(wordID)
	if w == nil || g.state.SolvedWordIDs[wordID] {
		return false
	}
	g.solveWord(w)
	g.checkWin()
	return true
}

// SubmitLetter writes one letter into the first empty cell of the
// active word, then rechecks the word. Valid only in the letter modes
// with an active selection; a fully filled word is a no-op (there is no
// overwrite of the last cell). Completing the word marks it solved and
// clears the selection.
func (g *GameSession) SubmitLetter(letter string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying || g.Mode == ModeDragWords {
		return false
	}
	letter = normalizeLetter(letter)
	if letter == "" || g.state.ActiveWordID == "" {
		return false
	}
	w := g.Puzzle.WordByID(g.state.ActiveWordID)
	if w == nil {
		return false
	}

	placed := false
	for j := 0; j < w.Length(); j++ {
		r, c := w.CellAt(j)
		key := cellKey(r, c)
		if g.state.UserInputs[key] == "" {
			g.state.UserInputs[key] = letter
			placed = true
			break
		}
	}
	if !placed {
		return false
	}

	g.recheckActiveWord(w)
	return true
}

// RequestHint reveals part of the active word against a coin debit. In
// DRAG_WORDS mode the hint solves the whole word; in the letter modes it
// fixes the first wrong-or-missing cell and rechecks the word. The debit
// and the reveal happen together or not at all. Without an active,
// unsolved word the call is a silent no-op.
func (g *GameSession) RequestHint(ledger *ProgressLedger) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhasePlaying || g.state.ActiveWordID == "" {
		return false, nil
	}
	w := g.Puzzle.WordByID(g.state.ActiveWordID)
	if w == nil || g.state.SolvedWordIDs[w.ID] {
		return false, nil
	}
	if !ledger.SpendCoins(HintCost) {
		return false, ErrInsufficientCoins
	}

	// Nothing below can fail, so the debit and the reveal stay atomic.
	if g.Mode == ModeDragWords {
		g.solveWord(w)
		g.checkWin()
		return true, nil
	}

	for j, r := range []rune(w.Answer) {
		row, col := w.CellAt(j)
		key := cellKey(row, col)
		if g.state.UserInputs[key] != string(r) {
			g.state.UserInputs[key] = string(r)
			break
		}
	}
	g.recheckActiveWord(w)
	return true, nil
}

// solveWord adds the word to the solved set and backfills its inputs.
// Caller holds the lock.
func (g *GameSession) solveWord(w *WordPlacement) {
	g.state.SolvedWordIDs[w.ID] = true
	for j, r := range []rune(w.Answer) {
		row, col := w.CellAt(j)
		g.state.UserInputs[cellKey(row, col)] = string(r)
	}
}

// recheckActiveWord tests whether every cell of the word now holds its
// expected letter; if so the word is solved and deselected. Caller
// holds the lock.
func (g *GameSession) recheckActiveWord(w *WordPlacement) {
	for j, r := range []rune(w.Answer) {
		row, col := w.CellAt(j)
		if g.state.UserInputs[cellKey(row, col)] != string(r) {
			return
		}
	}
	g.state.SolvedWordIDs[w.ID] = true
	g.state.ActiveWordID = ""
	g.checkWin()
}

// checkWin schedules the WIN transition once every word is solved. The
// delay decouples the final solve from the reward computation. Caller
// holds the lock.
func (g *GameSession) checkWin() {
	if g.winPending || len(g.state.SolvedWordIDs) != len(g.Puzzle.Words) {
		return
	}
	g.winPending = true
	time.AfterFunc(g.winAfter, func() {
		g.mu.Lock()
		if g.phase != PhasePlaying {
			g.mu.Unlock()
			return
		}
		g.phase = PhaseWon
		fn := g.onWin
		g.mu.Unlock()
		if fn != nil {
			fn(g)
		}
	})
}

// normalizeLetter reduces input to a single uppercase letter, or "".
func normalizeLetter(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if utf8.RuneCountInString(s) != 1 {
		return ""
	}
	r := []rune(s)[0]
	if !unicode.IsLetter(r) {
		return ""
	}
	return string(r)
}
