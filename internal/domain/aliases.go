package domain

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	ac "github.com/petar-dambovaliev/aho-corasick"
	"golang.org/x/text/unicode/norm"
)

// AliasTable maps a canonical identifier to the spellings that denote it.
type AliasTable map[string][]string

// AreaAliases - canonical area ids and their aliases (romaji, kanji, kana)
var AreaAliases = AliasTable{
	"tokyo":     {"tokyo", "東京", "東京都", "とうきょう", "トウキョウ"},
	"osaka":     {"osaka", "大阪", "大阪府", "おおさか"},
	"kyoto":     {"kyoto", "京都", "京都府", "きょうと"},
	"yokohama":  {"yokohama", "横浜", "よこはま"},
	"nara":      {"nara", "奈良"},
	"kamakura":  {"kamakura", "鎌倉"},
	"hakone":    {"hakone", "箱根"},
	"nikko":     {"nikko", "日光"},
	"kobe":      {"kobe", "神戸"},
	"chiba":     {"chiba", "千葉"},
	"nagoya":    {"nagoya", "名古屋"},
	"hiroshima": {"hiroshima", "広島"},
	"fukuoka":   {"fukuoka", "福岡", "博多", "hakata"},
	"sapporo":   {"sapporo", "札幌"},
	"hokkaido":  {"hokkaido", "北海道"},
	"okinawa":   {"okinawa", "沖縄", "那覇", "naha"},
}

// CategoryAliases - canonical service categories and their synonyms
var CategoryAliases = AliasTable{
	"gourmet":       {"gourmet", "food", "dining", "食事", "グルメ", "飲食", "グルメ・飲食", "食べ歩き"},
	"sightseeing":   {"sightseeing", "観光", "名所", "観光地"},
	"shopping":      {"shopping", "ショッピング", "買い物"},
	"culture":       {"culture", "文化", "文化体験", "伝統", "traditional"},
	"history":       {"history", "歴史", "史跡"},
	"nature":        {"nature", "outdoor", "自然", "アウトドア"},
	"nightlife":     {"nightlife", "ナイトライフ", "夜遊び"},
	"entertainment": {"entertainment", "エンタメ", "エンターテイメント", "anime", "アニメ"},
	"family":        {"family", "家族", "ファミリー", "子連れ"},
}

var (
	// AreaIndex resolves area spellings to canonical ids.
	AreaIndex = mustAliasIndex("area", AreaAliases)
	// CategoryIndex resolves category spellings to canonical ids.
	CategoryIndex = mustAliasIndex("category", CategoryAliases)
)

// CanonicalAreas returns every canonical area id, sorted.
func CanonicalAreas() []string {
	return AreaAliases.canonicalIDs()
}

// CanonicalCategories returns every canonical category id, sorted.
func CanonicalCategories() []string {
	return CategoryAliases.canonicalIDs()
}

func (t AliasTable) canonicalIDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks that every alias is non-empty after normalisation and
// belongs to exactly one canonical id.
func (t AliasTable) Validate() error {
	owner := make(map[string]string)
	for id, aliases := range t {
		if NormalizeTerm(id) == "" {
			return fmt.Errorf("empty canonical id")
		}
		if len(aliases) == 0 {
			return fmt.Errorf("canonical id %q has no aliases", id)
		}
		for _, alias := range aliases {
			key := NormalizeTerm(alias)
			if key == "" {
				return fmt.Errorf("canonical id %q has an empty alias", id)
			}
			if prev, ok := owner[key]; ok && prev != id {
				return fmt.Errorf("alias %q maps to both %q and %q", alias, prev, id)
			}
			owner[key] = id
		}
	}
	return nil
}

// NormalizeTerm folds width variants (NFKC), trims and lower-cases.
func NormalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// AliasIndex scans free text for known aliases.
type AliasIndex struct {
	exact    map[string]string
	scanners []aliasScanner
}

// aliasScanner pairs one automaton with the canonical id of each pattern.
type aliasScanner struct {
	matcher   ac.AhoCorasick
	canonical []string
}

// NewAliasIndex validates table and compiles its aliases. Latin-script
// aliases only match whole words; CJK aliases match anywhere since the
// script has no word separators. Overlapping hits resolve to the longest
// leftmost alias, so 東京都 never yields 京都.
func NewAliasIndex(table AliasTable) (*AliasIndex, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	idx := &AliasIndex{exact: make(map[string]string)}

	var latin, cjk []string
	var latinIDs, cjkIDs []string
	for _, id := range table.canonicalIDs() {
		for _, alias := range table[id] {
			key := NormalizeTerm(alias)
			idx.exact[key] = id
			if isASCII(key) {
				latin = append(latin, key)
				latinIDs = append(latinIDs, id)
			} else {
				cjk = append(cjk, key)
				cjkIDs = append(cjkIDs, id)
			}
		}
	}

	if len(latin) > 0 {
		idx.scanners = append(idx.scanners, newAliasScanner(latin, latinIDs, true))
	}
	if len(cjk) > 0 {
		idx.scanners = append(idx.scanners, newAliasScanner(cjk, cjkIDs, false))
	}
	return idx, nil
}

func newAliasScanner(patterns, canonical []string, wholeWords bool) aliasScanner {
	builder := ac.NewAhoCorasickBuilder(ac.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  wholeWords,
		MatchKind:            ac.LeftMostLongestMatch,
	})
	return aliasScanner{
		matcher:   builder.Build(patterns),
		canonical: canonical,
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func mustAliasIndex(name string, table AliasTable) *AliasIndex {
	idx, err := NewAliasIndex(table)
	if err != nil {
		panic(fmt.Sprintf("invalid %s alias table: %v", name, err))
	}
	return idx
}

// Canonicalize returns the canonical ids mentioned in term, in order of
// appearance. A term without any known alias canonicalises to its own
// normalised form.
func (x *AliasIndex) Canonicalize(term string) []string {
	normalized := NormalizeTerm(term)
	if normalized == "" {
		return nil
	}

	if id, ok := x.exact[normalized]; ok {
		return []string{id}
	}

	type hit struct {
		start int
		id    string
	}
	var hits []hit
	for _, sc := range x.scanners {
		for _, m := range sc.matcher.FindAll(normalized) {
			hits = append(hits, hit{start: m.Start(), id: sc.canonical[m.Pattern()]})
		}
	}
	if len(hits) == 0 {
		return []string{normalized}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].start < hits[j].start
	})

	seen := make(map[string]struct{}, len(hits))
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		if _, ok := seen[h.id]; ok {
			continue
		}
		seen[h.id] = struct{}{}
		ids = append(ids, h.id)
	}
	return ids
}

// Matches reports whether the two terms share a canonical id.
func (x *AliasIndex) Matches(a, b string) bool {
	left := x.Canonicalize(a)
	if len(left) == 0 {
		return false
	}
	right := x.Canonicalize(b)
	for _, l := range left {
		for _, r := range right {
			if l == r {
				return true
			}
		}
	}
	return false
}

// MatchesAny reports whether any requested term matches any offered term.
func (x *AliasIndex) MatchesAny(requested, offered []string) bool {
	for _, want := range requested {
		for _, have := range offered {
			if x.Matches(want, have) {
				return true
			}
		}
	}
	return false
}
