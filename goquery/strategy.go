package goquery

// Match is one key/value pair produced by an extraction strategy. Scalar
// fields use only the Value; mapping fields use both.
type Match struct {
	Key   string
	Value string
}

// Strategy is a single extraction rule applied to a document. It returns
// the raw matches it produced, or nil when nothing matched. Strategies are
// pure functions of the document: they never error and never mutate state.
type Strategy func(doc *Document) []Match

// firstAccepted applies strategies in priority order and returns the value
// of the first match that passes accept. Later strategies are not attempted
// once a value is accepted. Returns "" when no strategy yields an accepted
// value.
func firstAccepted(doc *Document, strategies []Strategy, accept func(string) bool) string {
	for _, strategy := range strategies {
		for _, m := range strategy(doc) {
			if m.Value != "" && (accept == nil || accept(m.Value)) {
				return m.Value
			}
		}
	}
	return ""
}

// mergeAll applies every strategy and merges accepted matches into one
// mapping. Duplicate keys resolve last-write-wins: a later strategy in the
// list overwrites an earlier one. Downstream consumers depend on structured
// table scans overriding regex scans, so this ordering must not change.
func mergeAll(doc *Document, strategies []Strategy, accept func(key, value string) bool) map[string]string {
	out := map[string]string{}
	for _, strategy := range strategies {
		for _, m := range strategy(doc) {
			if m.Key == "" || m.Value == "" {
				continue
			}
			if accept == nil || accept(m.Key, m.Value) {
				out[m.Key] = m.Value
			}
		}
	}
	return out
}
