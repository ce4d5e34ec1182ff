package readability

import "regexp"

// ruleKind tags a class/id pattern with the effect it has on a node.
type ruleKind int

const (
	// ruleFavor boosts the content score of matching nodes.
	ruleFavor ruleKind = iota

	// rulePenalty lowers the content score of matching nodes.
	rulePenalty

	// ruleStrip removes matching nodes before scoring, unless they also
	// match a favor pattern or sit on the ancestry path of the body.
	ruleStrip
)

// classRule is one entry of the heuristic rule set. Rules are evaluated
// against the concatenated class and id attributes of a node, once per
// node, so the full heuristic stays auditable in one place.
type classRule struct {
	kind ruleKind
	re   *regexp.Regexp
}

// Default pattern sources. These are the empirically tuned values
// published by the upstream Readability heuristic, kept verbatim rather
// than re-derived; Options can extend each list.
const (
	defaultFavorSource   = `article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`
	defaultPenaltySource = `-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`
	defaultStripSource   = `-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`
)

var (
	// maybeCandidate guards the strip rule: nodes that look unlikely but
	// also carry one of these markers are kept for scoring.
	maybeCandidate = regexp.MustCompile(`(?i)and|article|body|column|content|main|shadow`)

	bylinePattern = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)

	shareElements = regexp.MustCompile(`(?i)(\b|_)(share|sharedaddy)(\b|_)`)

	videoEmbeds = regexp.MustCompile(`(?i)//(www\.)?((dailymotion|youtube|youtube-nocookie|player\.vimeo|v\.qq)\.com|(archive|upload\.wikimedia)\.org|player\.twitch\.tv)`)

	titleSeparators     = regexp.MustCompile(`\s[\|\-\\/>»]\s`)
	titleFirstSeparator = regexp.MustCompile(`(?i)[^\|\-\\/>»]*[\|\-\\/>»](.*)`)
	titleLastSeparator  = regexp.MustCompile(`(?i)(.*)[\|\-\\/>»] .*`)
)

// ruleSet holds the compiled heuristic rules for one extractor instance.
type ruleSet struct {
	rules []classRule
}

// newRuleSet compiles the default rules plus any user-supplied pattern
// sources. Invalid user patterns surface as errors rather than being
// silently dropped.
func newRuleSet(favor, penalty, strip []string) (*ruleSet, error) {
	sources := []struct {
		kind ruleKind
		pats []string
	}{
		{ruleFavor, append([]string{defaultFavorSource}, favor...)},
		{rulePenalty, append([]string{defaultPenaltySource}, penalty...)},
		{ruleStrip, append([]string{defaultStripSource}, strip...)},
	}

	rs := &ruleSet{}
	for _, src := range sources {
		for _, pat := range src.pats {
			re, err := regexp.Compile(`(?i)` + pat)
			if err != nil {
				return nil, err
			}
			rs.rules = append(rs.rules, classRule{kind: src.kind, re: re})
		}
	}
	return rs, nil
}

// match evaluates every rule against the given class/id string once and
// returns which kinds matched.
func (rs *ruleSet) match(classID string) (favor, penalty, strip bool) {
	if classID == "" {
		return false, false, false
	}
	for _, rule := range rs.rules {
		if !rule.re.MatchString(classID) {
			continue
		}
		switch rule.kind {
		case ruleFavor:
			favor = true
		case rulePenalty:
			penalty = true
		case ruleStrip:
			strip = true
		}
	}
	return favor, penalty, strip
}

// classWeight translates rule matches into a score adjustment.
func (rs *ruleSet) classWeight(classID string) float64 {
	favor, penalty, _ := rs.match(classID)
	weight := 0.0
	if favor {
		weight += 25
	}
	if penalty {
		weight -= 25
	}
	return weight
}
