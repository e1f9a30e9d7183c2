package formset

import (
	"regexp"
	"strconv"
	"strings"
)

// Substitute replaces every placeholder occurrence in content with the
// stringified index. This is the whole templating contract for cloning:
// field names in the template carry the literal placeholder where the block
// index belongs.
func Substitute(content string, index int) string {
	return strings.ReplaceAll(content, Placeholder, strconv.Itoa(index))
}

// Renumber rewrites the block index embedded in a field identifier to index,
// touching only the first "<prefix>-<digits>-" token. A bare numeric
// substring elsewhere in the name is never rewritten, so a field like
// "variant-2-price2024" keeps its trailing digits.
func Renumber(name, prefix string, index int) string {
	re := indexToken(prefix)
	return re.ReplaceAllString(name, prefix+"-"+strconv.Itoa(index)+"-")
}

// BlockIndex extracts the index embedded in a field identifier, or -1 if
// the name does not carry one for this prefix.
func BlockIndex(name, prefix string) int {
	m := indexToken(prefix).FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}

func indexToken(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d+)-`)
}
