package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// AppendQuery extends the jump query and moves the cursor to the best match.
func (p *Panel) AppendQuery(text string) bool {
	if text == "" {
		return false
	}
	p.Query += text
	p.jump()
	return true
}

// BackspaceQuery removes the last rune of the jump query.
func (p *Panel) BackspaceQuery() bool {
	runes := []rune(p.Query)
	if len(runes) == 0 {
		return false
	}
	p.Query = string(runes[:len(runes)-1])
	p.jump()
	return true
}

// ClearQuery empties the jump query without moving the cursor.
func (p *Panel) ClearQuery() bool {
	if p.Query == "" {
		return false
	}
	p.Query = ""
	return true
}

func (p *Panel) jump() {
	if idx := BestMatchIndex(p.Rows, p.Query); idx >= 0 {
		p.Cursor = idx
	}
}

// BestMatchIndex ranks row labels against query and returns the index of the
// best match, preferring exact then prefix matches. It returns -1 when nothing
// matches.
func BestMatchIndex(rows []Row, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(rows) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.ToLower(row.Label) == lower {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
