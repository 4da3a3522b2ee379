package session

import (
	"strings"

	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Value string `json:"value"`
	Rank  int    `json:"rank"`
	Seq   int    `json:"seq"`
}

var journal = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Journal(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func records() map[string]*record {
	cached, expired, err := journal.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember records pushed values, keeping the most recent session.journal_size of them.
func Remember(values ...string) error {
	cached := records()

	seq := 0
	for _, r := range cached {
		seq = max(seq, r.Seq)
	}

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		seq++
		if r, ok := cached[v]; ok {
			r.Rank++
			r.Seq = seq
		} else {
			cached[v] = &record{Value: v, Rank: 1, Seq: seq}
		}
	}

	if limit := viper.GetInt(key.SessionJournalSize); limit >= 0 && len(cached) > limit {
		recent := lo.Values(cached)
		slices.SortFunc(recent, func(a, b *record) int {
			return b.Seq - a.Seq
		})
		for _, r := range recent[limit:] {
			delete(cached, r.Value)
		}
	}

	return journal.Set(cached)
}

// Suggest returns remembered values fuzzily matching q, most pushed first.
func Suggest(q string) []string {
	q = strings.TrimSpace(q)

	matched := lo.Filter(lo.Values(records()), func(r *record, _ int) bool {
		return fuzzy.MatchFold(q, r.Value)
	})

	slices.SortFunc(matched, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Value, b.Value)
	})

	return lo.Map(matched, func(r *record, _ int) string {
		return r.Value
	})
}

// SuggestOne returns the best suggestion for q, if any.
func SuggestOne(q string) mo.Option[string] {
	suggestions := Suggest(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// Forget clears the journal.
func Forget() error {
	return journal.Set(nil)
}
