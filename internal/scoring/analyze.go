// Package scoring implements the listing quality engine: a pure, stateless
// analysis of a listing's title, tags, description and materials that yields
// a 0-100 score with a per-category breakdown and actionable issues.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/dotcommander/listinglint/internal/types"
)

// Analysis is the result of one scoring run. The materials category
// contributes to Score but has no named field of its own; callers can
// recover it as Score - TitleScore - TagsScore - DescScore.
type Analysis struct {
	Score      int           `json:"score"`      // 0-100 total
	TitleScore int           `json:"titleScore"` // 0-25
	TagsScore  int           `json:"tagsScore"`  // 0-25
	DescScore  int           `json:"descScore"`  // 0-25
	Issues     []types.Issue `json:"issues"`
}

// categoryMax caps each category's contribution to the total score.
const categoryMax = 25

// Length and count thresholds for the individual checks.
const (
	titleMinLength   = 80
	titleMaxLength   = 140
	tagSlots         = 13
	tagMaxLength     = 20
	descMinLength    = 300
	descSnippetChars = 160
)

// Analyze scores a listing. It never fails: empty inputs are scored as
// deficiencies, not rejected. Repeated calls with the same inputs produce
// identical results, and issues are always emitted in
// title → tags → description → materials order.
func Analyze(title string, tags []string, description string, materials []string) Analysis {
	titleScore, titleIssues := scoreTitle(title, tags)
	tagsScore, tagIssues := scoreTags(title, tags)
	descScore, descIssues := scoreDescription(description, tags)
	extrasScore, materialIssues := scoreMaterials(materials)

	issues := make([]types.Issue, 0, len(titleIssues)+len(tagIssues)+len(descIssues)+len(materialIssues))
	issues = append(issues, titleIssues...)
	issues = append(issues, tagIssues...)
	issues = append(issues, descIssues...)
	issues = append(issues, materialIssues...)

	titleScore = clamp(titleScore)
	tagsScore = clamp(tagsScore)
	descScore = clamp(descScore)
	extrasScore = clamp(extrasScore)

	return Analysis{
		Score:      titleScore + tagsScore + descScore + extrasScore,
		TitleScore: titleScore,
		TagsScore:  tagsScore,
		DescScore:  descScore,
		Issues:     issues,
	}
}

// scoreTitle evaluates title length, pipe separators, primary keyword
// placement and repeated-word dilution. The returned score may be negative;
// the caller clamps it.
func scoreTitle(title string, tags []string) (int, []types.Issue) {
	if title == "" {
		return 0, []types.Issue{issue(types.SeverityError, types.AreaTitle, "No title set")}
	}

	var issues []types.Issue
	score := 0

	length := len(title)
	switch {
	case length >= titleMinLength && length <= titleMaxLength:
		score += 10
		issues = append(issues, issue(types.SeverityGood, types.AreaTitle,
			fmt.Sprintf("Good title length (%d/%d chars)", length, titleMaxLength)))
	case length > titleMaxLength:
		issues = append(issues, issue(types.SeverityError, types.AreaTitle,
			fmt.Sprintf("Title too long (%d/%d chars)", length, titleMaxLength)))
	default:
		score += 5
		issues = append(issues, issue(types.SeverityWarning, types.AreaTitle,
			fmt.Sprintf("Title is short (%d chars, aim for %d-%d)", length, titleMinLength, titleMaxLength)))
	}

	if strings.Contains(title, " | ") {
		score += 5
		sections := 0
		for _, part := range strings.Split(title, "|") {
			if strings.TrimSpace(part) != "" {
				sections++
			}
		}
		if sections >= 3 {
			issues = append(issues, issue(types.SeverityGood, types.AreaTitle,
				fmt.Sprintf("%d keyword sections separated by pipes", sections)))
		}
	} else if !strings.Contains(title, "|") {
		issues = append(issues, issue(types.SeverityWarning, types.AreaTitle,
			"No pipe separators in title"))
	}

	lowerTitle := strings.ToLower(title)
	if len(tags) > 0 {
		firstTag := strings.ToLower(tags[0])
		if words := strings.Fields(firstTag); len(words) > 0 {
			if strings.HasPrefix(lowerTitle, words[0]) {
				score += 10
				issues = append(issues, issue(types.SeverityGood, types.AreaTitle,
					"Title starts with the primary keyword"))
			} else if strings.Contains(lowerTitle, firstTag) {
				score += 5
				issues = append(issues, issue(types.SeverityWarning, types.AreaTitle,
					fmt.Sprintf("Primary keyword %q is in the title but not at the start", tags[0])))
			}
		}
	}

	// Repeated words dilute keyword weight. Pipes and commas are separators,
	// words of 3 chars or fewer (articles, "art", etc.) are ignored, and the
	// penalty is per distinct repeated word, not per extra occurrence.
	cleaned := strings.NewReplacer("|", " ", ",", " ").Replace(lowerTitle)
	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}
	var repeated []string
	for _, word := range order {
		if counts[word] > 1 {
			repeated = append(repeated, word)
		}
	}
	if len(repeated) > 0 {
		score -= 3 * len(repeated)
		issues = append(issues, issue(types.SeverityWarning, types.AreaTitle,
			fmt.Sprintf("Repeated words dilute keywords: %s", strings.Join(repeated, ", "))))
	}

	return score, issues
}

// scoreTags evaluates slot usage, tag format, primary keyword alignment with
// the title, and duplicate tags.
func scoreTags(title string, tags []string) (int, []types.Issue) {
	if len(tags) == 0 {
		return 0, []types.Issue{issue(types.SeverityError, types.AreaTags, "No tags set")}
	}

	var issues []types.Issue
	score := 0

	if len(tags) == tagSlots {
		score += 10
		issues = append(issues, issue(types.SeverityGood, types.AreaTags,
			fmt.Sprintf("All %d tag slots used", tagSlots)))
	} else {
		score += int(math.Round(float64(len(tags)) / tagSlots * 10))
		issues = append(issues, issue(types.SeverityError, types.AreaTags,
			fmt.Sprintf("%d/%d tag slots used", len(tags), tagSlots)))
	}

	singleWord := 0
	overLength := 0
	allValid := true
	for _, tag := range tags {
		if !strings.Contains(tag, " ") {
			singleWord++
		}
		if len(tag) > tagMaxLength {
			overLength++
		}
		if len(tag) < 1 || len(tag) > tagMaxLength || !strings.Contains(tag, " ") {
			allValid = false
		}
	}
	switch {
	case allValid:
		score += 10
		issues = append(issues, issue(types.SeverityGood, types.AreaTags,
			fmt.Sprintf("All tags are multi-word and within %d characters", tagMaxLength)))
	case singleWord == 0 && overLength == 0:
		score += 10
	default:
		if singleWord > 0 {
			score += 5
			issues = append(issues, issue(types.SeverityWarning, types.AreaTags,
				fmt.Sprintf("%d single-word tags; multi-word tags match more searches", singleWord)))
		}
		if overLength > 0 {
			score += 3
			issues = append(issues, issue(types.SeverityError, types.AreaTags,
				fmt.Sprintf("%d tags over the %d character limit", overLength, tagMaxLength)))
		}
	}

	firstTag := strings.ToLower(tags[0])
	if strings.Contains(strings.ToLower(title), firstTag) {
		score += 5
		issues = append(issues, issue(types.SeverityGood, types.AreaTags,
			fmt.Sprintf("First tag %q appears in the title", tags[0])))
	} else {
		issues = append(issues, issue(types.SeverityWarning, types.AreaTags,
			fmt.Sprintf("First tag %q is missing from the title", tags[0])))
	}

	// Every occurrence beyond the first costs 5 points; the message lists
	// each duplicated value once.
	seen := make(map[string]bool)
	reported := make(map[string]bool)
	var dups []string
	dupCount := 0
	for _, tag := range tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if seen[key] {
			dupCount++
			if !reported[key] {
				reported[key] = true
				dups = append(dups, key)
			}
		}
		seen[key] = true
	}
	if dupCount > 0 {
		score -= 5 * dupCount
		issues = append(issues, issue(types.SeverityError, types.AreaTags,
			fmt.Sprintf("Duplicate tags waste slots: %s", strings.Join(dups, ", "))))
	}

	return score, issues
}

// scoreDescription evaluates length, primary keyword placement in the search
// snippet, and the presence of the standard buyer-facing sections.
func scoreDescription(description string, tags []string) (int, []types.Issue) {
	if description == "" {
		return 0, []types.Issue{issue(types.SeverityError, types.AreaDescription, "No description set")}
	}

	var issues []types.Issue
	score := 0

	length := len(description)
	if length >= descMinLength {
		score += 5
		issues = append(issues, issue(types.SeverityGood, types.AreaDescription,
			fmt.Sprintf("Description length %d chars", length)))
	} else {
		issues = append(issues, issue(types.SeverityError, types.AreaDescription,
			fmt.Sprintf("Description too short (%d/%d chars minimum)", length, descMinLength)))
	}

	if len(tags) > 0 {
		snippet := description
		if len(snippet) > descSnippetChars {
			snippet = snippet[:descSnippetChars]
		}
		if strings.Contains(strings.ToLower(snippet), strings.ToLower(tags[0])) {
			score += 10
			issues = append(issues, issue(types.SeverityGood, types.AreaDescription,
				fmt.Sprintf("Primary keyword in the first %d chars", descSnippetChars)))
		} else {
			issues = append(issues, issue(types.SeverityWarning, types.AreaDescription,
				fmt.Sprintf("Primary keyword %q missing from the first %d chars", tags[0], descSnippetChars)))
		}
	}

	lower := strings.ToLower(description)
	if strings.Contains(lower, "perfect for") {
		score += 5
		issues = append(issues, issue(types.SeverityGood, types.AreaDescription,
			`Has a "PERFECT FOR" section`))
	} else {
		issues = append(issues, issue(types.SeverityWarning, types.AreaDescription,
			`Missing a "PERFECT FOR" section`))
	}
	if strings.Contains(lower, "print details") {
		score += 5
		issues = append(issues, issue(types.SeverityGood, types.AreaDescription,
			`Has a "PRINT DETAILS" section`))
	} else {
		issues = append(issues, issue(types.SeverityWarning, types.AreaDescription,
			`Missing a "PRINT DETAILS" section`))
	}

	return score, issues
}

// scoreMaterials awards presence only. The category shares the 25-point cap
// with the others but its checks can award at most 5 points.
func scoreMaterials(materials []string) (int, []types.Issue) {
	if len(materials) == 0 {
		return 0, []types.Issue{issue(types.SeverityWarning, types.AreaMaterials, "No materials set")}
	}
	return 5, []types.Issue{issue(types.SeverityGood, types.AreaMaterials,
		fmt.Sprintf("%d materials listed", len(materials)))}
}

func issue(severity, area, message string) types.Issue {
	return types.Issue{Severity: severity, Area: area, Message: message}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > categoryMax {
		return categoryMax
	}
	return score
}
