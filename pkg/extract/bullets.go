package extract

import "strings"

// parseBullets extracts ordered, fully merged phrases from a bounded text
// region. A bullet glyph starts one or more items (a single line may carry
// several bullet-delimited segments); a short line (at most maxContinuation
// words) immediately following a bullet line is a wrapped remainder of the
// open item and merges into it; any other non-bullet line starts a new item.
// A region containing no bullet glyph at all yields nil, a valid outcome
// that sends the caller to its fallback path.
//
// Post-processing drops exact duplicates (first occurrence wins) and
// single-word items, both extraction noise in the observed documents.
func parseBullets(lines []string, bullet string, maxContinuation int) []string {
	hasBullet := false
	for _, line := range lines {
		if strings.Contains(line, bullet) {
			hasBullet = true
			break
		}
	}
	if !hasBullet {
		return nil
	}

	var items []string
	current := ""
	lastBulletLine := -1

	flush := func() {
		if current != "" {
			items = append(items, strings.TrimSpace(current))
			current = ""
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.Contains(line, bullet) {
			flush()
			for _, part := range strings.Split(line, bullet) {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				flush()
				current = part
			}
			lastBulletLine = i
			continue
		}

		isContinuation := lastBulletLine >= 0 &&
			i == lastBulletLine+1 &&
			len(strings.Fields(line)) <= maxContinuation
		if isContinuation && current != "" {
			current += " " + line
		} else {
			flush()
			current = line
		}
	}
	flush()

	return cleanBulletItems(items)
}

// cleanBulletItems removes exact duplicates and single-word items.
func cleanBulletItems(items []string) []string {
	var cleaned []string
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item] || len(strings.Fields(item)) < 2 {
			continue
		}
		seen[item] = true
		cleaned = append(cleaned, item)
	}
	return cleaned
}

// BulletStrategy splits an ordered bullet-item list into feature and
// advantage buckets. It only runs on the keyword-fallback path; the
// bounding-box path reads the two regions separately and needs no
// classification. The shipped positional heuristic carries over legacy
// behavior with no confirmed semantic grounding, which is why the strategy
// is named and swappable rather than hardcoded.
type BulletStrategy interface {
	Name() string
	Classify(items []string) (features, advantages []string)
}

// parityStrategy reproduces the legacy positional heuristic: of the first
// five items, the odd-positioned ones (1st, 3rd, 5th) are features;
// everything else is an advantage.
type parityStrategy struct{}

// ParityStrategy returns the legacy positional classification.
func ParityStrategy() BulletStrategy { return parityStrategy{} }

func (parityStrategy) Name() string { return "positional-parity" }

func (parityStrategy) Classify(items []string) (features, advantages []string) {
	for i, item := range items {
		pos := i + 1
		if pos <= 5 && pos%2 == 1 {
			features = append(features, item)
		} else {
			advantages = append(advantages, item)
		}
	}
	return features, advantages
}
