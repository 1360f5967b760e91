package ui

import (
	"fmt"

	"github.com/idilsaglam/triptych/internal/model"
)

const maxTitleWidth = 60

// Header renders the table title line with the live item count.
func Header(n int) string {
	return fmt.Sprintf("%s  %s %d",
		C(Current().Title, "Items"),
		C(Current().Accent, "Total"), n,
	)
}

// ItemRows formats one line per item: id, post title, album title and
// the owning username.
func ItemRows(items []*model.Item) []string {
	if len(items) == 0 {
		return []string{C(Current().Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		title := truncate(it.Post.Title, maxTitleWidth)
		album := truncate(it.Album.Title, maxTitleWidth/2)
		out = append(out, fmt.Sprintf("%s %s %s %s",
			C(Current().ID, fmt.Sprintf("%3d.", it.ID)),
			C(Current().Post, title),
			C(Current().Album, "— "+album),
			C(Current().User, "@"+it.User.Username),
		))
	}
	return out
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
