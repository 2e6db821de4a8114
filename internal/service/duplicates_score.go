package service

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

// comparisonStrategy selects how two non-empty, unequal strings are scored.
type comparisonStrategy struct {
	fuzzy     bool
	threshold float64
}

var (
	strategyExact   = comparisonStrategy{}
	strategyFuzzy90 = comparisonStrategy{fuzzy: true, threshold: 0.9}
)

// maxFuzzyLength bounds the combined rune length of strings scored fuzzily.
const maxFuzzyLength = 100

// stringComparison describes one weighted string term of a pair score.
// min and max default to -weight and +weight, ifOneEmpty to -0.2,
// ifBothEmpty to 0.05 and ifExactMatch to max.
type stringComparison struct {
	strategy     comparisonStrategy
	weight       float64
	min          *float64
	max          *float64
	ifOneEmpty   *float64
	ifBothEmpty  *float64
	ifExactMatch *float64
}

func ptr(v float64) *float64 { return &v }

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

type pairScorer struct {
	similarity SimilarityScorer
}

// compareStrings scores a and b under opts. The result is clamped to
// [min, max].
func (s pairScorer) compareStrings(a, b string, opts stringComparison) float64 {
	lo := orDefault(opts.min, -opts.weight)
	hi := orDefault(opts.max, opts.weight)
	ifOneEmpty := orDefault(opts.ifOneEmpty, -0.2)
	ifBothEmpty := orDefault(opts.ifBothEmpty, 0.05)
	ifExactMatch := orDefault(opts.ifExactMatch, hi)

	var score float64
	switch {
	case strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "":
		if a == b {
			score = ifBothEmpty
		} else {
			score = ifOneEmpty
		}
	case a == b:
		score = ifExactMatch
	default:
		score = s.compareDistinct(a, b, opts.strategy, lo, hi)
	}

	return clamp(score, lo, hi)
}

func (s pairScorer) compareDistinct(a, b string, strategy comparisonStrategy, lo, hi float64) float64 {
	if !strategy.fuzzy || utf8.RuneCountInString(a)+utf8.RuneCountInString(b) > maxFuzzyLength {
		return lo
	}

	similarity := clamp(s.similarity.Score(a, b), 0, 1)
	if similarity < strategy.threshold {
		return lo
	}
	if strategy.threshold >= 1 {
		return hi
	}

	ratio := (similarity - strategy.threshold) / (1 - strategy.threshold)
	return lo + ratio*(hi-lo)
}

// compareLists penalizes the size difference and averages the best
// per-element scores of the shorter list against the longer one. A matched
// element leaves the pool only when its score is positive.
func compareLists[T any](a, b []T, score func(x, y T) float64) float64 {
	sizeScore := -math.Abs(float64(len(a)-len(b))) * 0.2 / 3

	short, long := a, b
	if len(a) > len(b) {
		short, long = b, a
	}
	if len(short) == 0 {
		return sizeScore
	}

	pool := make([]T, len(long))
	copy(pool, long)

	var total float64
	var count int
	for _, x := range short {
		best := -1
		var bestScore float64
		for i, y := range pool {
			if sc := score(x, y); best == -1 || sc > bestScore {
				best, bestScore = i, sc
			}
		}
		if best == -1 {
			continue
		}
		if bestScore > 0 {
			pool = append(pool[:best], pool[best+1:]...)
		}
		total += bestScore
		count++
	}

	if count == 0 {
		return sizeScore
	}
	return sizeScore + total/float64(count)
}

// score averages the weighted terms comparing two normalized ciphers.
func (s pairScorer) score(a, b models.Cipher) float64 {
	terms := make([]float64, 0, 12)

	terms = append(terms, s.compareStrings(a.Name, b.Name, stringComparison{
		strategy: strategyFuzzy90,
		weight:   1,
	}))

	notesWeight, notesOneEmpty := 0.6, -0.2
	if a.Type == models.CipherTypeSecureNote {
		notesWeight, notesOneEmpty = 2, -2
	}
	terms = append(terms, s.compareStrings(a.Notes, b.Notes, stringComparison{
		strategy:   strategyFuzzy90,
		weight:     notesWeight,
		ifOneEmpty: ptr(notesOneEmpty),
	}))

	terms = append(terms, compareLists(a.URIs, b.URIs, compareURIs)*3)
	terms = append(terms, compareLists(a.Fields, b.Fields, func(x, y models.Field) float64 {
		return equalScore(x == y, 1, -1)
	})*3)
	terms = append(terms, compareLists(a.Attachments, b.Attachments, func(x, y models.Attachment) float64 {
		return equalScore(x.FileName == y.FileName && x.Size == y.Size, 1, -1)
	})*2)

	switch {
	case a.Type == models.CipherTypeLogin && a.Login != nil && b.Login != nil:
		terms = append(terms, s.loginTerms(*a.Login, *b.Login)...)
	case a.Type == models.CipherTypeCard && a.Card != nil && b.Card != nil:
		terms = append(terms, s.compareStrings(a.Card.Number, b.Card.Number, stringComparison{
			strategy: strategyExact,
			weight:   5,
		}))
	case a.Type == models.CipherTypeIdentity && a.Identity != nil && b.Identity != nil:
		terms = append(terms, s.identityTerms(*a.Identity, *b.Identity)...)
	}

	var sum float64
	for _, t := range terms {
		sum += t
	}
	return sum / float64(len(terms))
}

func (s pairScorer) loginTerms(a, b models.Login) []float64 {
	return []float64{
		s.compareStrings(a.Username, b.Username, stringComparison{strategy: strategyExact, weight: 0.5, min: ptr(-6)}),
		s.compareStrings(a.Password, b.Password, stringComparison{strategy: strategyExact, weight: 1, min: ptr(-3)}),
		s.compareStrings(a.TOTP, b.TOTP, stringComparison{strategy: strategyExact, weight: 5, min: ptr(-4)}),
		compareLists(credentialIDs(a.Passkeys), credentialIDs(b.Passkeys), func(x, y string) float64 {
			return equalScore(x == y, 1, -3)
		}) * 3,
	}
}

func (s pairScorer) identityTerms(a, b models.Identity) []float64 {
	pairs := [][2]string{
		{a.Title, b.Title},
		{a.FirstName, b.FirstName},
		{a.MiddleName, b.MiddleName},
		{a.LastName, b.LastName},
		{a.Email, b.Email},
		{a.Phone, b.Phone},
		{a.Username, b.Username},
	}

	terms := make([]float64, 0, len(pairs))
	for _, p := range pairs {
		terms = append(terms, s.compareStrings(p[0], p[1], stringComparison{strategy: strategyExact, weight: 0.7}))
	}
	return terms
}

// compareURIs scores two normalized URIs. Regex URIs only match verbatim;
// other URIs sharing everything after the first dot score half negative.
func compareURIs(a, b models.URI) float64 {
	if a.Match == models.MatchTypeRegularExpression || b.Match == models.MatchTypeRegularExpression {
		return equalScore(a.URI == b.URI, 1, -1)
	}
	if a.URI == b.URI {
		return 1
	}
	if afterFirstDot(a.URI) == afterFirstDot(b.URI) {
		return -0.5
	}
	return -1
}

func afterFirstDot(s string) string {
	if _, after, found := strings.Cut(s, "."); found {
		return after
	}
	return s
}

func credentialIDs(passkeys []models.Passkey) []string {
	ids := make([]string, len(passkeys))
	for i, p := range passkeys {
		ids[i] = p.CredentialID
	}
	return ids
}

func equalScore(equal bool, ifEqual, ifNot float64) float64 {
	if equal {
		return ifEqual
	}
	return ifNot
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
