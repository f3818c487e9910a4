// Command server exposes the generator over HTTP: /map.png renders a world
// for the query parameters, so a browser can explore seeds without a
// rebuild.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	worldmapgen "github.com/romxai/world-map-generator"
)

var addr = flag.String("addr", ":3333", "listen address")

func main() {
	flag.Parse()

	router := mux.NewRouter()
	router.HandleFunc("/map.png", mapHandler)
	router.HandleFunc("/map/{seed}.png", mapHandler)
	log.Println("listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, router))
}

func mapHandler(w http.ResponseWriter, req *http.Request) {
	cfg := worldmapgen.NewConfig()
	if seed := mux.Vars(req)["seed"]; seed != "" {
		cfg.Seed = seed
	}

	q := req.URL.Query()
	if s := q.Get("seed"); s != "" {
		cfg.Seed = s
	}
	if v, err := strconv.Atoi(q.Get("width")); err == nil {
		cfg.Width = v
	}
	if v, err := strconv.Atoi(q.Get("height")); err == nil {
		cfg.Height = v
	}
	if v, err := strconv.ParseFloat(q.Get("sea_level"), 64); err == nil {
		cfg.SeaLevel = v
	}
	if v, err := strconv.ParseFloat(q.Get("mountain_height"), 64); err == nil {
		cfg.MountainHeight = v
	}
	if v, err := strconv.ParseFloat(q.Get("rivers"), 64); err == nil {
		cfg.Rivers = v
	}

	m, err := worldmapgen.NewMapFromConfig(cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	md := m.RasterData()
	img, err := m.Render(md, worldmapgen.RenderOptions{HillShade: true, DrawRivers: true})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("ETag", fmt.Sprintf("%q", strconv.FormatUint(md.Hash(), 16)))
	if err := png.Encode(w, img); err != nil {
		log.Println("encoding map:", err)
	}
}
