package main

import (
	"log"
	"net/http"
	"time"

	"github.com/dominicf2001/comfyboard/internal/config"
	"github.com/dominicf2001/comfyboard/internal/database"
	"github.com/dominicf2001/comfyboard/web"
	"github.com/dominicf2001/comfyboard/web/views"
)

func main() {
	cfg := config.Load()
	strs := cfg.Strings()

	tmpls, err := views.LoadTemplates(cfg.TemplateDir)
	if err != nil {
		log.Fatal(err)
	}

	store := database.NewPostStore(database.WithDefaults(strs.Defaults))

	r := web.NewRouter(store, tmpls, web.Options{
		StaticDir: cfg.StaticDir,
		Dev:       cfg.Dev,
		Strings:   strs,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Listening on http://%s (locale %s)", cfg.Addr, cfg.Locale)
	log.Fatal(srv.ListenAndServe())
}
