package usecase

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"pedezap/internal/domain/entities"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchSuggestion is one lower-confidence candidate returned alongside (or
// instead of) a confident match.
type MatchSuggestion struct {
	Product entities.Product
	Score   float64
	Reason  string
}

// MatchResult is the ephemeral outcome of one matcher call. BestMatch is nil
// when no product cleared the confidence bar; absence of a match is never an
// error.
type MatchResult struct {
	BestMatch       *entities.Product
	Suggestions     []MatchSuggestion
	Confidence      float64
	Numbers         []int
	NormalizedInput string
	CorrectedInput  string
}

const (
	// bestMatchThreshold is the "confident enough to auto-add" bar.
	bestMatchThreshold = 0.5
	// suggestionThreshold opens the "worth asking the user" band.
	suggestionThreshold = 0.3
	// keywordSimilarity is the per-word bar used by the keyword-overlap score.
	keywordSimilarity = 0.7

	maxSuggestions = 3
)

// typoTable maps common misspellings to canonical tokens. Whole-word
// replacement, applied after normalization, in declaration order; a corrected
// word is not reprocessed.
var typoTable = []struct{ from, to string }{
	{"piza", "pizza"},
	{"pizaa", "pizza"},
	{"pitza", "pizza"},
	{"pessa", "pizza"},
	{"hamburger", "hamburguer"},
	{"hamburge", "hamburguer"},
	{"amburguer", "hamburguer"},
	{"xburguer", "x burguer"},
	{"refri", "refrigerante"},
	{"cocacola", "coca cola"},
	{"sanduba", "sanduiche"},
	{"sandwiche", "sanduiche"},
	{"portuquesa", "portuguesa"},
	{"margerita", "margherita"},
	{"marguerita", "margherita"},
	{"calabreza", "calabresa"},
	{"guarana", "guaraná"},
}

// stopWords are filler tokens ignored when building the relevant-words
// string. Tokens of two characters or fewer are dropped regardless.
var stopWords = map[string]bool{
	"eu": true, "quero": true, "queria": true, "gostaria": true, "uma": true,
	"vou": true, "por": true, "favor": true, "para": true, "pra": true,
	"com": true, "sem": true, "mais": true, "tambem": true,
	"desse": true, "dessa": true, "deste": true, "desta": true,
	"manda": true, "traz": true, "pedir": true, "comprar": true,
}

// numberWords is the fixed Brazilian Portuguese number vocabulary recognized
// by the extractor: zero through vinte, the tens up to noventa, cem/cento and
// mil.
var numberWords = map[string]int{
	"zero": 0,
	"um": 1, "uma": 1,
	"dois": 2, "duas": 2,
	"tres": 3, "quatro": 4, "cinco": 5, "seis": 6, "sete": 7,
	"oito": 8, "nove": 9, "dez": 10,
	"onze": 11, "doze": 12, "treze": 13,
	"catorze": 14, "quatorze": 14,
	"quinze": 15, "dezesseis": 16, "dezessete": 17, "dezoito": 18,
	"dezenove": 19, "vinte": 20,
	"trinta": 30, "quarenta": 40, "cinquenta": 50, "sessenta": 60,
	"setenta": 70, "oitenta": 80, "noventa": 90,
	"cem": 100, "cento": 100,
	"mil": 1000,
}

var diacriticsStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ProductMatcher resolves free-text customer utterances against the catalog.
// It is stateless; every method is a pure function of its inputs.
type ProductMatcher struct{}

func NewProductMatcher() *ProductMatcher {
	return &ProductMatcher{}
}

// Normalize lowercases the text, strips diacritics, replaces every
// non-alphanumeric rune with a space and collapses whitespace. Total
// function; never fails.
func (m *ProductMatcher) Normalize(text string) string {
	text = strings.ToLower(text)
	if stripped, _, err := transform.String(diacriticsStripper, text); err == nil {
		text = stripped
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// CorrectTypos rewrites known misspellings in already-normalized text.
func (m *ProductMatcher) CorrectTypos(normalized string) string {
	words := strings.Fields(normalized)
	for i, w := range words {
		for _, entry := range typoTable {
			if w == entry.from {
				words[i] = entry.to
				break
			}
		}
	}
	// Replacement targets may themselves be diacritic ("guaraná"), so the
	// result is re-normalized once. No recursive reapplication.
	return m.Normalize(strings.Join(words, " "))
}

// ExtractNumbers scans normalized words left to right. Digit tokens are taken
// directly; number words accumulate into a running total that is flushed
// whenever a non-number token appears or the input ends. "cem" and "mil"
// multiply a non-empty accumulator, so "dois mil" flushes as 2000.
func (m *ProductMatcher) ExtractNumbers(text string) []int {
	var result []int
	acc := 0
	pending := false

	flush := func() {
		if pending {
			result = append(result, acc)
			acc = 0
			pending = false
		}
	}

	for _, w := range strings.Fields(m.Normalize(text)) {
		if n, err := strconv.Atoi(w); err == nil {
			flush()
			result = append(result, n)
			continue
		}
		v, ok := numberWords[w]
		if !ok {
			flush()
			continue
		}
		switch {
		case !pending:
			acc = v
			pending = true
		case v == 100 || v == 1000:
			acc *= v
		default:
			acc += v
		}
	}
	flush()
	return result
}

// Similarity converts Levenshtein distance into a [0,1] score:
// (maxLen - distance) / maxLen. Two empty strings score 1 by convention.
func (m *ProductMatcher) Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}

// relevantWords drops stop words and tokens of two characters or fewer from
// corrected input.
func (m *ProductMatcher) relevantWords(corrected string) []string {
	var out []string
	for _, w := range strings.Fields(corrected) {
		if len([]rune(w)) <= 2 || stopWords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// MatchProducts resolves an utterance to at most one confident product plus a
// ranked suggestion band. Scoring per product:
//
//	0.6*similarity(relevantWords, productName) + 0.4*keywordOverlap
//
// where keywordOverlap is the fraction of the product name's words that have
// some input word with similarity above 0.7. Scores above 0.5 qualify as the
// confident best match; the (0.3, 0.5] band and runners-up become
// suggestions, capped at three.
func (m *ProductMatcher) MatchProducts(rawText string, catalog []entities.Product) MatchResult {
	normalized := m.Normalize(rawText)
	corrected := m.CorrectTypos(normalized)

	result := MatchResult{
		NormalizedInput: normalized,
		CorrectedInput:  corrected,
		Numbers:         m.ExtractNumbers(corrected),
	}

	relevant := m.relevantWords(corrected)
	if len(relevant) == 0 {
		return result
	}
	relevantJoined := strings.Join(relevant, " ")

	bestScore := 0.0
	bestIdx := -1
	var scored []MatchSuggestion

	for i, p := range catalog {
		nameNorm := m.Normalize(p.Name)
		if nameNorm == "" {
			continue
		}
		nameSim := m.Similarity(relevantJoined, nameNorm)

		nameWords := strings.Fields(nameNorm)
		hits := 0
		for _, nw := range nameWords {
			for _, iw := range relevant {
				if m.Similarity(iw, nw) > keywordSimilarity {
					hits++
					break
				}
			}
		}
		keywordScore := float64(hits) / float64(len(nameWords))

		score := 0.6*nameSim + 0.4*keywordScore
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
		if score > suggestionThreshold {
			reason := "nome parecido"
			if keywordScore > nameSim {
				reason = "palavras em comum"
			}
			scored = append(scored, MatchSuggestion{Product: p, Score: score, Reason: reason})
		}
	}

	result.Confidence = bestScore
	if bestIdx >= 0 && bestScore > bestMatchThreshold {
		p := catalog[bestIdx]
		result.BestMatch = &p
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	for _, s := range scored {
		if result.BestMatch != nil && s.Product.ID == result.BestMatch.ID {
			continue
		}
		result.Suggestions = append(result.Suggestions, s)
		if len(result.Suggestions) == maxSuggestions {
			break
		}
	}
	return result
}

// tokenNumber parses one token as a quantity: a digit string or a single
// number word.
func tokenNumber(tok string) (int, bool) {
	if n, err := strconv.Atoi(tok); err == nil {
		return n, true
	}
	if v, ok := numberWords[tok]; ok {
		return v, true
	}
	return 0, false
}

// ExtractQuantityForProduct finds the quantity the utterance ties to a
// specific product. Tried in order: digit adjacent to the full product name,
// number word adjacent to the full name, digit or number word adjacent to the
// name's first word, then any number token next to any token overlapping the
// name. Falls back to 1. Deliberately more permissive than the single-product
// matcher: multi-product utterances need per-item quantities.
func (m *ProductMatcher) ExtractQuantityForProduct(text string, product entities.Product) int {
	tokens := strings.Fields(m.CorrectTypos(m.Normalize(text)))
	nameWords := strings.Fields(m.Normalize(product.Name))
	if len(tokens) == 0 || len(nameWords) == 0 {
		return 1
	}

	// (a) and (b): number adjacent to the full name occurrence.
	for start := 0; start+len(nameWords) <= len(tokens); start++ {
		match := true
		for k, nw := range nameWords {
			if tokens[start+k] != nw {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if start > 0 {
			if n, ok := tokenNumber(tokens[start-1]); ok && n >= 1 {
				return n
			}
		}
		if end := start + len(nameWords); end < len(tokens) {
			if n, ok := tokenNumber(tokens[end]); ok && n >= 1 {
				return n
			}
		}
	}

	// (c): number adjacent to just the first word of the name.
	first := nameWords[0]
	for i, tok := range tokens {
		if tok != first {
			continue
		}
		if i > 0 {
			if n, ok := tokenNumber(tokens[i-1]); ok && n >= 1 {
				return n
			}
		}
		if i+1 < len(tokens) {
			if n, ok := tokenNumber(tokens[i+1]); ok && n >= 1 {
				return n
			}
		}
	}

	// (d): number next to any token overlapping the product name.
	for i, tok := range tokens {
		if _, isNum := tokenNumber(tok); isNum {
			continue
		}
		overlaps := false
		for _, nw := range nameWords {
			if m.Similarity(tok, nw) > keywordSimilarity {
				overlaps = true
				break
			}
		}
		if !overlaps {
			continue
		}
		if i > 0 {
			if n, ok := tokenNumber(tokens[i-1]); ok && n >= 1 {
				return n
			}
		}
		if i+1 < len(tokens) {
			if n, ok := tokenNumber(tokens[i+1]); ok && n >= 1 {
				return n
			}
		}
	}

	return 1
}

// FindMultipleProducts greedily matches catalog products against the text,
// longest name (most words) first, claiming token positions so that "Pizza"
// and "Pizza Margherita" cannot both fire on the same occurrence of "pizza".
// Two passes:
//
//  1. full-name matches: every word of the candidate's name appears at an
//     unclaimed token position;
//  2. first-word matches: the candidate's first name word appears unclaimed
//     AND no other remaining product starts with that same word. These only
//     count when the utterance resolves at least two products overall (a
//     pass-1 match exists, or pass 2 itself yields two or more), so "dois
//     hamburguer e uma coca cola" still lands both items while a solitary
//     partial like "quero uma coca" matches nothing and falls through to
//     the single-product matcher's suggestion band.
func (m *ProductMatcher) FindMultipleProducts(text string, catalog []entities.Product) []entities.Product {
	tokens := strings.Fields(m.CorrectTypos(m.Normalize(text)))
	if len(tokens) == 0 {
		return nil
	}

	ordered := make([]entities.Product, len(catalog))
	copy(ordered, catalog)
	sort.SliceStable(ordered, func(i, j int) bool {
		wi := len(strings.Fields(m.Normalize(ordered[i].Name)))
		wj := len(strings.Fields(m.Normalize(ordered[j].Name)))
		if wi != wj {
			return wi > wj
		}
		return len(ordered[i].Name) > len(ordered[j].Name)
	})

	claimed := make([]bool, len(tokens))
	matched := make(map[string]bool)
	var found []entities.Product

	claim := func(positions []int) {
		for _, i := range positions {
			claimed[i] = true
		}
	}

	// Pass 1: full-name occurrences.
	for _, p := range ordered {
		nameWords := strings.Fields(m.Normalize(p.Name))
		if len(nameWords) == 0 {
			continue
		}
		positions := make([]int, 0, len(nameWords))
		ok := true
		for _, nw := range nameWords {
			pos := -1
			for i, tok := range tokens {
				if claimed[i] || tok != nw {
					continue
				}
				taken := false
				for _, used := range positions {
					if used == i {
						taken = true
						break
					}
				}
				if !taken {
					pos = i
					break
				}
			}
			if pos < 0 {
				ok = false
				break
			}
			positions = append(positions, pos)
		}
		if ok {
			claim(positions)
			matched[p.ID] = true
			found = append(found, p)
		}
	}

	// Pass 2: unambiguous first-word occurrences.
	var extras []entities.Product
	for _, p := range ordered {
		if matched[p.ID] {
			continue
		}
		nameWords := strings.Fields(m.Normalize(p.Name))
		if len(nameWords) == 0 {
			continue
		}
		first := nameWords[0]
		if len([]rune(first)) <= 2 {
			continue
		}
		ambiguous := false
		for _, other := range ordered {
			if other.ID == p.ID || matched[other.ID] {
				continue
			}
			ow := strings.Fields(m.Normalize(other.Name))
			if len(ow) > 0 && ow[0] == first {
				ambiguous = true
				break
			}
		}
		if ambiguous {
			continue
		}
		for i, tok := range tokens {
			if !claimed[i] && tok == first {
				claimed[i] = true
				matched[p.ID] = true
				extras = append(extras, p)
				break
			}
		}
	}

	// A lone first-word hit stays with the single-product matcher, which can
	// ask the customer to confirm instead of guessing.
	if len(found) > 0 || len(extras) >= 2 {
		found = append(found, extras...)
	}

	return found
}
