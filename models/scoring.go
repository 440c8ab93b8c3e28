package models

import (
	"fmt"
	"strconv"
)

const (
	AnswerMin = 0
	AnswerMax = 4

	// OxfordMax is the highest possible Oxford score (12 items x 4).
	OxfordMax = 48
	// WomacMax is the highest possible WOMAC score (24 items x 4).
	WomacMax = 96
)

// ScoreOxford sums the twelve Oxford answers. Every item must be present and
// in [0,4]; a complete answer set therefore always scores within [0,48].
func ScoreOxford(answers map[string]int) (int, error) {
	if len(answers) != len(OxfordItems) {
		return 0, fmt.Errorf("expected %d oxford answers, got %d", len(OxfordItems), len(answers))
	}
	total := 0
	for i := range OxfordItems {
		v, ok := answers[strconv.Itoa(i)]
		if !ok {
			return 0, fmt.Errorf("missing oxford answer for item %d", i)
		}
		if v < AnswerMin || v > AnswerMax {
			return 0, fmt.Errorf("oxford answer for item %d out of range: %d", i, v)
		}
		total += v
	}
	return total, nil
}

// ScoreWomac sums the 24 WOMAC answers across the pain, stiffness and
// function sections. Keys are "<section>:<index>". Every item must be present
// and in [0,4]; a complete answer set always scores within [0,96].
func ScoreWomac(answers map[string]int) (int, error) {
	expected := 0
	for _, sec := range WomacSections {
		expected += len(sec.Items)
	}
	if len(answers) != expected {
		return 0, fmt.Errorf("expected %d womac answers, got %d", expected, len(answers))
	}
	total := 0
	for _, sec := range WomacSections {
		for i := range sec.Items {
			key := sec.Key + ":" + strconv.Itoa(i)
			v, ok := answers[key]
			if !ok {
				return 0, fmt.Errorf("missing womac answer %q", key)
			}
			if v < AnswerMin || v > AnswerMax {
				return 0, fmt.Errorf("womac answer %q out of range: %d", key, v)
			}
			total += v
		}
	}
	return total, nil
}
