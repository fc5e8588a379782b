package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dominicf2001/comfyboard/internal/config"
	"github.com/dominicf2001/comfyboard/internal/database"
	"github.com/dominicf2001/comfyboard/web/views"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// 1 MB is plenty for a title, an author and a body.
const MAX_FORM_BYTES int64 = 1 << 20

type Options struct {
	StaticDir string
	Dev       bool
	Strings   config.Strings
}

// fatalf ends the process. Tests swap it out.
var fatalf = log.Fatalf

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// crashOnPoison exits instead of letting Recoverer answer 500 once the
// store is poisoned. Other panics pass through untouched.
func crashOnPoison(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, database.ErrStorePoisoned) {
				fatalf("fatal: %v", err)
				return
			}
			panic(rec)
		}()
		next.ServeHTTP(w, r)
	})
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
	}
}

func NewRouter(store *database.PostStore, tmpls views.Templates, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(crashOnPoison)

	if opts.StaticDir != "" {
		r.Handle("/static/*",
			disableCacheInDevMode(opts.Dev,
				http.StripPrefix("/static",
					http.FileServer(http.Dir(opts.StaticDir)))))
	}

	// LIST
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render(w, r, views.Index(tmpls.Index, store.ListNewestFirst()))
	})

	// WRITE FORM
	r.Get("/write", func(w http.ResponseWriter, r *http.Request) {
		render(w, r, views.Write(tmpls.Write))
	})

	// CREATE POST
	r.Post("/write", func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MAX_FORM_BYTES)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			log.Printf("ParseForm: %v", err)
			return
		}

		post := store.Append(
			r.PostFormValue("title"),
			r.PostFormValue("author"),
			r.PostFormValue("content"),
		)
		log.Printf("post %d created by %q", post.Id, post.Author)

		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	// VIEW POST
	r.Get("/post/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, opts.Strings.PostNotFound, http.StatusNotFound)
			return
		}

		post, err := store.FindByID(id)
		if err != nil {
			if !errors.Is(err, database.ErrPostNotFound) {
				http.Error(w, "Failed to get post", http.StatusInternalServerError)
				log.Printf("FindByID %d: %v", id, err)
				return
			}
			http.Error(w, opts.Strings.PostNotFound, http.StatusNotFound)
			return
		}

		render(w, r, views.Post(tmpls.View, post))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "ok %d\n", store.Len())
	})

	return r
}
