package components

import (
	"strings"

	"radialmenu/internal/tui/styles"
)

// RenderHeldKeys draws the held keys as chips joined by "+".
func RenderHeldKeys(keys []string) string {
	if len(keys) == 0 {
		return styles.Idle.Render("(nothing held)")
	}
	chips := make([]string, len(keys))
	for i, k := range keys {
		chips[i] = styles.Key.Render(k)
	}
	return strings.Join(chips, " + ")
}
