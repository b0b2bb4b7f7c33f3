package search

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.QueryTranslator = (*Translator)(nil)

// Translator rewrites Chinese queries into English slug keywords using the
// mod translation database. Other queries pass through unchanged.
type Translator struct {
	Mods spotlight.ModDatabase

	// MaxMatches bounds the fuzzy (non-absolute) record matches considered.
	// Defaults to 5.
	MaxMatches int
}

// TranslateQuery returns the rewritten query, or query itself when it has
// no Chinese characters or nothing in the database matches.
func (t *Translator) TranslateQuery(ctx context.Context, query string) (string, error) {
	if !hasCJK(query) {
		return query, nil
	}

	records, err := t.Mods.FindModRecords(ctx)
	if err != nil {
		return query, err
	}

	limit := t.MaxMatches
	if limit <= 0 {
		limit = 5
	}
	matches := MatchChineseNames(records, query, limit)
	if len(matches) == 0 {
		return query, nil
	}

	keywords := selectKeywords(matches)
	if len(keywords) == 0 {
		return query, nil
	}
	return strings.Join(keywords, " "), nil
}

// hasCJK reports whether s contains a character in U+4E00..U+9FBB.
func hasCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fbb {
			return true
		}
	}
	return false
}

type nameMatch struct {
	record     *spotlight.ModRecord
	similarity float64
	absolute   bool
}

// MatchChineseNames ranks records by how well their name matches query.
// Records containing every query part are always returned first; at most
// maxResults fuzzy matches above a length-dependent threshold follow. The
// result holds at most 2*maxResults records.
func MatchChineseNames(records []*spotlight.ModRecord, query string, maxResults int) []*spotlight.ModRecord {
	processed := strings.Join(strings.Fields(query), " ")
	if processed == "" {
		return nil
	}

	entries := make([]nameMatch, 0, len(records))
	for _, r := range records {
		entries = append(entries, nameMatch{
			record:     r,
			similarity: nameSimilarity(r.Name, processed),
			absolute:   isAbsoluteMatch(r.Name, processed),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].absolute != entries[j].absolute {
			return entries[i].absolute
		}
		return entries[i].similarity > entries[j].similarity
	})

	var minSimilarity float64
	switch n := countNonSpace(processed); {
	case n == 1:
		minSimilarity = 0.15
	case n == 2:
		minSimilarity = 0.12
	case n <= 4:
		minSimilarity = 0.08
	default:
		minSimilarity = 0.05
	}

	var results []*spotlight.ModRecord
	fuzzy := 0
	for _, e := range entries {
		if e.absolute {
			results = append(results, e.record)
		} else if e.similarity >= minSimilarity && fuzzy < maxResults {
			results = append(results, e.record)
			fuzzy++
		}
		if len(results) >= maxResults*2 {
			break
		}
	}
	return results
}

// nameSimilarity repeatedly takes the longest common substring starting at
// each query position, removes it from the source, and weights it by length
// and by how close the positions are. Lengths are measured in bytes.
func nameSimilarity(source, query string) float64 {
	sourceClean := strings.ReplaceAll(strings.ToLower(source), " ", "")
	queryClean := strings.ReplaceAll(strings.ToLower(query), " ", "")
	sourceLen := len(sourceClean)
	queryLen := len(queryClean)

	src := []rune(sourceClean)
	q := []rune(queryClean)
	if len(q) == 0 || len(src) == 0 {
		return 0
	}

	var lenSum float64
	qp := 0
	for qp < len(q) {
		lenMax, spMax := 0, 0
		for sp := 0; sp < len(src); {
			n := 0
			for qp+n < len(q) && sp+n < len(src) && src[sp+n] == q[qp+n] {
				n++
			}
			if n > lenMax {
				lenMax = n
				spMax = sp
			}
			sp += max(n, 1)
		}

		if lenMax > 0 {
			src = append(src[:spMax:spMax], src[spMax+lenMax:]...)

			incWeight := math.Max(math.Pow(1.4, float64(3+lenMax))-3.6, 0)
			distance := math.Abs(float64(qp - spMax))
			positionBonus := 1 + 0.3*math.Max(3-distance, 0)
			lenSum += incWeight * positionBonus
		}

		qp += max(lenMax, 1)
	}

	baseScore := lenSum / float64(queryLen)
	lengthFactor := 3 / math.Sqrt(float64(sourceLen)+15)
	shortQueryBonus := 1.0
	if queryLen <= 2 {
		shortQueryBonus = 3 - float64(queryLen)
	}
	return baseScore * lengthFactor * shortQueryBonus
}

// isAbsoluteMatch reports whether every query part occurs in the source
// with spaces removed, ignoring case.
func isAbsoluteMatch(source, query string) bool {
	clean := strings.ToLower(strings.ReplaceAll(source, " ", ""))
	for _, part := range strings.Fields(query) {
		if !strings.Contains(clean, strings.ToLower(part)) {
			return false
		}
	}
	return true
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

var stopWords = map[string]bool{
	"a": true, "of": true, "the": true, "for": true,
	"mod": true, "with": true, "and": true, "ftb": true,
}

// cleanKeyword trims brackets, quotes, dashes and underscores, lowercases,
// and rejects stop words and numbers.
func cleanKeyword(word string) (string, bool) {
	w := strings.TrimLeft(word, `{[("`)
	w = strings.TrimRight(w, `}])"`)
	w = strings.Trim(w, "-")
	w = strings.Trim(w, "_")
	w = strings.ToLower(w)
	if w == "" || stopWords[w] {
		return "", false
	}
	if _, err := strconv.ParseFloat(w, 64); err == nil {
		return "", false
	}
	return w, true
}

// slugKeywords splits a slug on - / _ , and cleans each word.
func slugKeywords(slug string) []string {
	replacer := strings.NewReplacer("-", " ", "/", " ", "_", " ", ",", " ")
	var keywords []string
	for _, word := range strings.Fields(replacer.Replace(slug)) {
		if kw, ok := cleanKeyword(word); ok {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// selectKeywords picks up to three keywords shared by at least 40% of the
// matched records, topping up with the best scored ones to at most five.
// Keywords are scored by frequency with a bonus for longer words; ties
// are broken alphabetically.
func selectKeywords(records []*spotlight.ModRecord) []string {
	counts := make(map[string]int)
	for _, r := range records {
		seen := make(map[string]bool)
		for _, slug := range []string{r.CurseForgeSlug, r.ModrinthSlug} {
			for _, kw := range slugKeywords(slug) {
				seen[kw] = true
			}
		}
		for kw := range seen {
			counts[kw]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	total := float64(len(records))
	type scored struct {
		keyword string
		score   float64
	}
	scores := make([]scored, 0, len(counts))
	for kw, n := range counts {
		lengthBonus := math.Min(float64(len(kw))/10, 1) + 1
		scores = append(scores, scored{keyword: kw, score: float64(n) / total * lengthBonus})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].keyword < scores[j].keyword
	})

	minFrequency := int(math.Max(total*0.4, 1))
	var selected []string
	chosen := make(map[string]bool)
	for _, s := range scores {
		if counts[s.keyword] >= minFrequency {
			selected = append(selected, s.keyword)
			chosen[s.keyword] = true
			if len(selected) >= 3 {
				break
			}
		}
	}
	if len(selected) < 3 {
		for _, s := range scores {
			if chosen[s.keyword] {
				continue
			}
			selected = append(selected, s.keyword)
			chosen[s.keyword] = true
			if len(selected) >= 5 {
				break
			}
		}
	}
	return selected
}

var _ spotlight.ResourceService = (*TranslatingResourceService)(nil)

// TranslatingResourceService rewrites queries through Translator and fills
// in translated resource names from the mod database.
type TranslatingResourceService struct {
	Next       spotlight.ResourceService
	Mods       spotlight.ModDatabase
	Translator spotlight.QueryTranslator
}

// FetchResourceListByName translates the query, delegates, and annotates
// a copy of the returned page. Translation failures fall back to the
// original query and untranslated names.
func (s *TranslatingResourceService) FetchResourceListByName(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
	if s.Translator != nil {
		if translated, err := s.Translator.TranslateQuery(ctx, query.Query); err == nil {
			query.Query = translated
		}
	}

	page, err := s.Next.FetchResourceListByName(ctx, query)
	if err != nil || page == nil || s.Mods == nil {
		return page, err
	}

	page = page.Clone()
	for _, r := range page.List {
		if r.TranslatedName != "" || r.Slug == "" {
			continue
		}
		record, err := s.Mods.FindModRecordBySlug(ctx, r.Slug, r.Source)
		if err != nil {
			continue
		}
		r.TranslatedName = record.Name
	}
	return page, nil
}
