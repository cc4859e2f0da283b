package validation

import "strings"

// MaxTags caps the number of tags kept on a post.
const MaxTags = 20

// TagSeparator joins sanitized tags.
const TagSeparator = ", "

// SplitTags breaks a comma separated tag string into trimmed, non-empty
// tags. Duplicates are dropped case-insensitively; the first occurrence and
// its casing win. At most MaxTags tags are returned, in input order.
func SplitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, piece := range strings.Split(tags, ",") {
		tag := strings.TrimSpace(piece)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}

// SanitizeTags normalises a tag string. Sanitizing an already sanitized
// string returns it unchanged.
func SanitizeTags(tags string) string {
	return strings.Join(SplitTags(tags), TagSeparator)
}
