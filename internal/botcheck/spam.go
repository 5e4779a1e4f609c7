package botcheck

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// content scoring at or above this is classified as spam
const SpamScoreThreshold = 50

// result of content spam analysis
type SpamResult struct {
	IsSpam  bool
	Score   int
	Reasons []string
}

var urlRegex = regexp.MustCompile(`(?i)(https?://|www\.)[^\s]+`)

// promotional/financial/pharma/gambling terms seen in form spam
var spamKeywords = []string{
	"viagra",
	"cialis",
	"casino",
	"lottery",
	"jackpot",
	"free money",
	"make money fast",
	"work from home",
	"click here",
	"buy now",
	"limited offer",
	"act now",
	"winner",
	"congratulations you",
	"crypto investment",
	"forex",
	"binary options",
	"loan approval",
	"cheap pills",
	"seo services",
	"backlinks",
}

// scores free-text content for spam signals; additive over independent
// checks, deterministic for a given input
func AnalyzeContentForSpam(content string) SpamResult {
	result := SpamResult{}

	if content == "" {
		return result
	}

	lower := strings.ToLower(content)

	// url density
	urls := urlRegex.FindAllString(content, -1)
	if len(urls) > 3 {
		result.Score += 30
		result.Reasons = append(result.Reasons, "excessive URLs")
	} else if len(urls) > 1 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "multiple URLs")
	}

	// keyword matches, one reason per distinct keyword
	for _, keyword := range spamKeywords {
		if strings.Contains(lower, keyword) {
			result.Score += 15
			result.Reasons = append(result.Reasons, fmt.Sprintf("spam keyword: %s", keyword))
		}
	}

	// shouting
	if len(content) > 20 && capitalRatio(content) > 0.5 {
		result.Score += 20
		result.Reasons = append(result.Reasons, "excessive capitalization")
	}

	// keyboard-mash style character runs
	if longestRun(content) >= 6 {
		result.Score += 15
		result.Reasons = append(result.Reasons, "repeated characters")
	}

	// symbol-heavy content
	if specialCharRatio(content) > 0.2 {
		result.Score += 20
		result.Reasons = append(result.Reasons, "excessive special characters")
	}

	// a bare link with no real message is the classic drive-by spam shape
	if len(content) < 50 && len(urls) > 0 {
		result.Score += 25
		result.Reasons = append(result.Reasons, "short message containing URL")
	}

	result.IsSpam = result.Score >= SpamScoreThreshold

	return result
}

// ratio of uppercase letters among all letters
func capitalRatio(content string) float64 {
	letters := 0
	upper := 0

	for _, r := range content {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}

	if letters == 0 {
		return 0
	}

	return float64(upper) / float64(letters)
}

// length of the longest run of a single repeated character
func longestRun(content string) int {
	longest := 0
	current := 0
	var prev rune

	for i, r := range content {
		if i > 0 && r == prev {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = r
	}

	return longest
}

// ratio of characters that are neither alphanumeric nor whitespace
func specialCharRatio(content string) float64 {
	total := 0
	special := 0

	for _, r := range content {
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			special++
		}
	}

	if total == 0 {
		return 0
	}

	return float64(special) / float64(total)
}
