package util

import (
	"fmt"
	"strings"

	"github.com/dominicf2001/comfyboard/internal/database"
)

// Path of a post's detail page.
func PostURL(id int) string {
	return fmt.Sprintf("/post/%d", id)
}

// RenderRow is one clickable list row. Content is never part of the list.
func RenderRow(post database.Post) string {
	return fmt.Sprintf(
		`<tr onclick="location.href='%s'">
                <td>%d</td>
                <td class="title">%s</td>
                <td>%s</td>
                <td>%s</td>
            </tr>`,
		PostURL(post.Id), post.Id, post.Title, post.Author, post.Date,
	)
}

// RenderList fills {{posts}} with one row per post, in the order given.
func RenderList(tmpl string, posts []database.Post) string {
	var b strings.Builder
	for _, post := range posts {
		b.WriteString(RenderRow(post))
	}
	return Substitute(tmpl, map[string]string{TOKEN_POSTS: b.String()})
}

func RenderPost(tmpl string, post database.Post) string {
	return Substitute(tmpl, map[string]string{
		TOKEN_TITLE:   post.Title,
		TOKEN_AUTHOR:  post.Author,
		TOKEN_DATE:    post.Date,
		TOKEN_CONTENT: EnrichPost(post.Content),
	})
}
