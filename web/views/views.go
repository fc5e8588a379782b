package views

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/dominicf2001/comfyboard/internal/database"
	"github.com/dominicf2001/comfyboard/internal/util"
)

// Templates holds the raw page templates, read once at startup.
type Templates struct {
	Index string
	Write string
	View  string
}

func LoadTemplates(dir string) (Templates, error) {
	var result Templates
	files := []struct {
		name string
		dst  *string
	}{
		{"index.html", &result.Index},
		{"write.html", &result.Write},
		{"view.html", &result.View},
	}

	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			return Templates{}, fmt.Errorf("load template %s: %w", f.name, err)
		}
		*f.dst = string(b)
	}

	return result, nil
}

func Index(tmpl string, posts []database.Post) templ.Component {
	return templ.Raw(util.RenderList(tmpl, posts))
}

func Write(tmpl string) templ.Component {
	return templ.Raw(tmpl)
}

func Post(tmpl string, post database.Post) templ.Component {
	return templ.Raw(util.RenderPost(tmpl, post))
}
