package corpus

// OverwriteRedirects replaces each title with its redirect target where
// the map has one (an empty target means the title is not a redirect),
// then drops duplicates keeping first occurrence. Two redirects landing
// on the same page collapse into one entry.
func OverwriteRedirects(titles []string, redirects map[string]string) []string {
	seen := make(map[string]bool, len(titles))
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		resolved := title
		if target := redirects[title]; target != "" {
			resolved = target
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		out = append(out, resolved)
	}
	return out
}
