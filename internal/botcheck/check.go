package botcheck

// combined verdicts at or above this confidence reject the submission
const BotConfidenceThreshold = 50

// signals gathered from a form submission; empty fields are skipped
type Input struct {
	Honeypot    string
	TimingToken string
	Content     string
	Email       string
}

// fused verdict across all form-level signals
type Result struct {
	IsBot      bool
	Confidence int
	Reasons    []string
}

// fuses honeypot, timing, content and email signals into one verdict.
// The honeypot is the strongest single signal; everything else is
// advisory weight that only rejects in combination.
func (m *TimingTokenManager) Check(in Input) Result {
	result := Result{}

	if !ValidateHoneypot(in.Honeypot) {
		result.Confidence += 80
		result.Reasons = append(result.Reasons, "honeypot field filled")
	}

	if in.TimingToken != "" {
		timing := m.Verify(in.TimingToken, DefaultMinFillTime, DefaultMaxTokenAge)
		if !timing.Valid {
			result.Confidence += 40
			result.Reasons = append(result.Reasons, "timing check failed: "+timing.Reason)
		}
	}

	if in.Content != "" {
		spam := AnalyzeContentForSpam(in.Content)
		if spam.IsSpam {
			result.Confidence += 40
			result.Reasons = append(result.Reasons, spam.Reasons...)
		} else if spam.Score >= SpamScoreThreshold/2 {
			result.Confidence += 20
			result.Reasons = append(result.Reasons, "borderline spam content")
		}
	}

	if in.Email != "" {
		email := ValidateEmail(in.Email)
		if !email.Valid {
			result.Confidence += 15
			result.Reasons = append(result.Reasons, "invalid email address")
		} else if email.IsDisposable {
			result.Confidence += 25
			result.Reasons = append(result.Reasons, "disposable email domain")
		}
	}

	if result.Confidence > 100 {
		result.Confidence = 100
	}

	result.IsBot = result.Confidence >= BotConfidenceThreshold

	return result
}
