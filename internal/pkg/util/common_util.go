package util

// DedupStrings 去重并保持原有顺序
func DedupStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string

	for _, item := range items {
		if item == "" {
			continue
		}
		if _, exists := seen[item]; !exists {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}

	return out
}
