package scoring

// The three mappers below share the same tier thresholds (80/60/40) so a
// caller can render a score without re-deriving them.

// ScoreGrade returns the letter grade for a total score.
func ScoreGrade(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	default:
		return "D"
	}
}

// ScoreColor returns the ANSI foreground color token for a score tier,
// suitable for lipgloss.Color.
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return "10" // green
	case score >= 60:
		return "11" // yellow
	case score >= 40:
		return "208" // orange
	default:
		return "9" // red
	}
}

// ScoreBg returns the ANSI background color token for a score tier, a darker
// variant of the matching ScoreColor tier.
func ScoreBg(score int) string {
	switch {
	case score >= 80:
		return "22" // dark green
	case score >= 60:
		return "58" // dark yellow
	case score >= 40:
		return "94" // dark orange
	default:
		return "52" // dark red
	}
}
