package gcode

import "strings"

// Kind identifies a supported command.
type Kind int

const (
	KindUnknown Kind = iota
	KindRapidMove       // G0
	KindFeedMove        // G1
	KindArcCW           // G2
	KindArcCCW          // G3
	KindDwell           // G4
	KindUnitsInch       // G20
	KindUnitsMM         // G21
	KindHome            // G28
	KindAbsoluteMode    // G90
	KindIncrementalMode // G91
	KindSetOffset       // G92
	KindProgramEnd      // M2
	KindToolChange      // M6
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindRapidMove:       "rapid move",
	KindFeedMove:        "feed move",
	KindArcCW:           "arc cw",
	KindArcCCW:          "arc ccw",
	KindDwell:           "dwell",
	KindUnitsInch:       "units inch",
	KindUnitsMM:         "units mm",
	KindHome:            "home",
	KindAbsoluteMode:    "absolute mode",
	KindIncrementalMode: "incremental mode",
	KindSetOffset:       "set offset",
	KindProgramEnd:      "program end",
	KindToolChange:      "tool change",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// classify identifies the command a normalized line encodes. The command
// word is the first space-delimited token and must match exactly, so G1
// never matches inside G10 or similar.
func classify(line string) Kind {
	word := line
	if sp := strings.IndexByte(line, ' '); sp >= 0 {
		word = line[:sp]
	}

	switch word {
	case "G0":
		return KindRapidMove
	case "G1":
		return KindFeedMove
	case "G2":
		return KindArcCW
	case "G3":
		return KindArcCCW
	case "G4":
		return KindDwell
	case "G20":
		return KindUnitsInch
	case "G21":
		return KindUnitsMM
	case "G28":
		return KindHome
	case "G90":
		return KindAbsoluteMode
	case "G91":
		return KindIncrementalMode
	case "G92":
		return KindSetOffset
	case "M2":
		return KindProgramEnd
	case "M6":
		return KindToolChange
	}
	return KindUnknown
}
