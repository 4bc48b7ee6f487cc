package seo

// MergeKeywords combines suggestions with the caller's keywords,
// suggestions first, dropping duplicates while keeping first-seen order,
// truncated to limit. Identity is case-sensitive, so "Shoes" and "shoes"
// stay distinct entries.
func MergeKeywords(suggestions, keywords []string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(suggestions)+len(keywords))
	merged := make([]string, 0, limit)
	for _, list := range [][]string{suggestions, keywords} {
		for _, item := range list {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			merged = append(merged, item)
			if len(merged) == limit {
				return merged
			}
		}
	}
	return merged
}

// Truncate returns at most limit items of list as a fresh non-nil slice.
func Truncate(list []string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	if len(list) < limit {
		limit = len(list)
	}
	out := make([]string, limit)
	copy(out, list[:limit])
	return out
}
