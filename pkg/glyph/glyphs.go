// Package glyph maps journal concepts onto the symbols the terminal shows.
package glyph

import (
	"fmt"

	"stillpoint.dev/still/pkg/journal"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Session marks a recorded sit in listings.
var Session = Glyph{
	Key:     "x",
	Symbol:  "✓",
	Meaning: "completed meditation",
}

// Pending marks an intention that is waiting for its session to start.
var Pending = Glyph{
	Key:     "~",
	Symbol:  "…",
	Meaning: "pending intention",
}

var kindGlyphs = map[journal.Kind]Glyph{
	journal.KindIntention: {
		Key:     "i",
		Symbol:  "◆",
		Meaning: "intention",
	},
	journal.KindInsight: {
		Key:     "!",
		Symbol:  "✦",
		Meaning: "insight",
	},
	journal.KindIdea: {
		Key:     "o",
		Symbol:  "○",
		Meaning: "idea",
	},
}

// ForKind returns the glyph for an entry kind.
func ForKind(k journal.Kind) Glyph {
	if g, ok := kindGlyphs[k]; ok {
		return g
	}
	return Glyph{Key: "-", Symbol: "⁃", Meaning: "note"}
}

func (g Glyph) String() string {
	return g.Symbol
}
