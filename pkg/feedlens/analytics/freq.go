// Package analytics aggregates per-record pipeline outputs into ranked
// frequency tables and time-bucketed sentiment series.
//
// Both aggregators are built for fan-out/fan-in use: partial results
// accumulated over disjoint record subsets merge into exactly the output a
// sequential pass would produce, because ordering decisions are keyed on
// global record positions rather than local append order.
package analytics

import "sort"

// TermCount is one row of a ranked frequency table.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// position locates a token occurrence in the corpus: record index first,
// offset within the record's keyword sequence second.
type position struct {
	record int
	offset int
}

func (p position) before(q position) bool {
	if p.record != q.record {
		return p.record < q.record
	}
	return p.offset < q.offset
}

// Counter accumulates keyword occurrences across the corpus. It tracks, per
// distinct term, the occurrence count and the earliest corpus position, so
// that ranking ties resolve identically no matter how the records were
// partitioned across workers. Counter is not safe for concurrent use; give
// each worker its own and Merge afterwards.
type Counter struct {
	counts map[string]int
	first  map[string]position
	total  int
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
		first:  make(map[string]position),
	}
}

// Observe consumes one record's keyword sequence. recordIndex must be the
// record's global position in the corpus, not a per-partition index.
func (c *Counter) Observe(recordIndex int, keywords []string) {
	for offset, term := range keywords {
		if term == "" {
			continue
		}
		c.counts[term]++
		c.total++
		pos := position{record: recordIndex, offset: offset}
		if prev, ok := c.first[term]; !ok || pos.before(prev) {
			c.first[term] = pos
		}
	}
}

// Merge folds another counter into this one. Merging is associative and
// commutative: counts add and first positions take the minimum.
func (c *Counter) Merge(other *Counter) {
	for term, count := range other.counts {
		c.counts[term] += count
	}
	c.total += other.total
	for term, pos := range other.first {
		if prev, ok := c.first[term]; !ok || pos.before(prev) {
			c.first[term] = pos
		}
	}
}

// Total returns the number of keyword occurrences observed, which equals the
// sum of all per-term counts.
func (c *Counter) Total() int {
	return c.total
}

// Distinct returns the number of distinct terms observed.
func (c *Counter) Distinct() int {
	return len(c.counts)
}

// Ranked returns the frequency table ordered by descending count, ties
// broken by earliest corpus position. A positive limit truncates to the top
// N entries; limit <= 0 returns everything. An empty counter yields nil.
func (c *Counter) Ranked(limit int) []TermCount {
	out := make([]TermCount, 0, len(c.counts))
	for term, count := range c.counts {
		out = append(out, TermCount{Term: term, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return c.first[out[i].Term].before(c.first[out[j].Term])
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
