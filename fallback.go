package main

// Built-in puzzles served when the provider is unavailable. One per age
// tier, deliberately small and with well-known words so the game always
// has something to load.

var fallbackPuzzles = map[AgeGroup]PuzzleDocument{
	Age4to5: {
		Title:  "Dyrevenner",
		Theme:  "dyr",
		Width:  4,
		Height: 3,
		Words: []WordPlacement{
			{ID: "katt", Answer: "KATT", Clue: "Sier mjau", ImageKeyword: "cat", Row: 0, Col: 0, Direction: Across},
			{ID: "hund", Answer: "HUND", Clue: "Sier voff", ImageKeyword: "dog", Row: 2, Col: 0, Direction: Across},
		},
	},
	Age6to7: {
		Title:  "Ute og inne",
		Theme:  "hverdag",
		Width:  3,
		Height: 3,
		Words: []WordPlacement{
			{ID: "sol", Answer: "SOL", Clue: "Skinner på himmelen", ImageKeyword: "sun", Row: 0, Col: 0, Direction: Across},
			{ID: "ost", Answer: "OST", Clue: "Gul og god på brødskiva", ImageKeyword: "cheese", Row: 0, Col: 1, Direction: Down},
			{ID: "lys", Answer: "LYS", Clue: "Tennes på bursdagskaken", ImageKeyword: "candle", Row: 0, Col: 2, Direction: Down},
		},
	},
	Age8to9: {
		Title:  "Skoledagen",
		Theme:  "skole",
		Width:  5,
		Height: 5,
		Words: []WordPlacement{
			{ID: "skole", Answer: "SKOLE", Clue: "Hit går du for å lære", ImageKeyword: "school", Row: 0, Col: 0, Direction: Across},
			{ID: "snegl", Answer: "SNEGL", Clue: "Bærer huset sitt på ryggen", ImageKeyword: "snail", Row: 0, Col: 0, Direction: Down},
			{ID: "eple", Answer: "EPLE", Clue: "Rød eller grønn frukt", ImageKeyword: "apple", Row: 2, Col: 0, Direction: Across},
			{ID: "lue", Answer: "LUE", Clue: "Varmer hodet om vinteren", ImageKeyword: "beanie", Row: 0, Col: 3, Direction: Down},
		},
	},
	Age10to12: {
		Title:  "Vilt og vakkert",
		Theme:  "natur",
		Width:  5,
		Height: 5,
		Words: []WordPlacement{
			{ID: "norge", Answer: "NORGE", Clue: "Landet med fjord og fjell", ImageKeyword: "norway", Row: 0, Col: 0, Direction: Across},
			{ID: "natur", Answer: "NATUR", Clue: "Skog, sjø og alt som gror", ImageKeyword: "nature", Row: 0, Col: 0, Direction: Down},
			{ID: "tiger", Answer: "TIGER", Clue: "Stripete storkatt", ImageKeyword: "tiger", Row: 2, Col: 0, Direction: Across},
			{ID: "rygg", Answer: "RYGG", Clue: "Baksiden av kroppen", ImageKeyword: "back", Row: 0, Col: 2, Direction: Down},
		},
	},
}

// fallbackPuzzle returns a copy of the built-in puzzle for the tier, so
// callers can hold it without sharing state between sessions.
func fallbackPuzzle(age AgeGroup) *PuzzleDocument {
	p, ok := fallbackPuzzles[age]
	if !ok {
		p = fallbackPuzzles[Age4to5]
	}
	cp := p
	cp.Words = make([]WordPlacement, len(p.Words))
	copy(cp.Words, p.Words)
	return &cp
}
