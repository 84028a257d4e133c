// Package app manages main application server.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	rice "github.com/GeertJohan/go.rice"
	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/wybiral/ytdetails/importers"
	"github.com/wybiral/ytdetails/lookup"
	"github.com/wybiral/ytdetails/media"
	"github.com/wybiral/ytdetails/utils"
)

//go:generate rice embed-go

// App represents main application.
type App struct {
	Config    *Config
	Lookup    *lookup.Service
	Sessions  *sessionStore
	Limiter   *rateLimiter
	Watcher   *fsnotify.Watcher
	Templates *templateStore
	Location  *time.Location
	Router    *mux.Router
	Handler   http.Handler

	server   *http.Server
	inflight sync.WaitGroup
}

// NewApp returns a new instance of App from Config using the YouTube Data
// API for lookups.
func NewApp(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.YouTube.APIKey == "" {
		if err := cfg.LoadAPIKey(); err != nil {
			return nil, err
		}
	}
	yt, err := importers.NewYoutubeImporter(
		context.Background(),
		cfg.YouTube.APIKey,
		cfg.YouTube.Endpoint,
	)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, yt)
}

func newApp(cfg *Config, f lookup.Fetcher) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	a := &App{
		Config:   cfg,
		Lookup:   lookup.NewService(f, time.Duration(cfg.YouTube.Timeout)*time.Second),
		Sessions: newSessionStore(time.Duration(cfg.Server.SessionTTL) * time.Second),
		Limiter:  newRateLimiter(cfg.Server.SubmitRate, cfg.Server.SubmitBurst),
		Location: loc,
	}

	// Templates
	var src templateSource
	if p := cfg.Server.TemplatePath; p != "" {
		if !utils.DirExists(p) {
			return nil, fmt.Errorf("template path %s is not a directory", p)
		}
		src = dirSource(p)
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, err
		}
		if err := w.Add(p); err != nil {
			w.Close()
			return nil, err
		}
		a.Watcher = w
	} else {
		src = rice.MustFindBox("../templates")
	}
	tm, err := parseTemplates(src)
	if err != nil {
		return nil, err
	}
	a.Templates = newTemplateStore("base")
	a.Templates.Replace(tm)

	// Setup Router
	r := mux.NewRouter().StrictSlash(true)
	r.HandleFunc("/", a.indexHandler).Methods("GET")
	r.HandleFunc("/", a.submitHandler).Methods("POST")
	r.HandleFunc("/dismiss", a.dismissHandler).Methods("POST")
	r.HandleFunc("/v/{id}", a.pageHandler).Methods("GET")
	r.HandleFunc("/healthz", a.healthHandler).Methods("GET")
	// Static file handler
	fsHandler := http.StripPrefix(
		"/static",
		http.FileServer(rice.MustFindBox("../static").HTTPBox()),
	)
	r.PathPrefix("/static/").Handler(fsHandler).Methods("GET")
	a.Router = r

	a.Handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.StandardLogger()),
	)(requestLogger(r))
	if cfg.Server.TrustedProxy {
		a.Handler = handlers.ProxyHeaders(a.Handler)
	}
	if a.Watcher != nil {
		go startWatcher(a)
	}
	return a, nil
}

// Run starts the server and blocks until it is closed.
func (a *App) Run() error {
	ln, err := net.Listen("tcp", a.Config.Addr())
	if err != nil {
		return err
	}
	a.server = &http.Server{
		Handler:           a.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	err = a.server.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server and waits for running lookups.
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	if a.server != nil {
		err = a.server.Shutdown(ctx)
	}
	if a.Watcher != nil {
		a.Watcher.Close()
	}
	a.inflight.Wait()
	return err
}

func (a *App) render(name string, w http.ResponseWriter, ctx interface{}) {
	a.renderStatus(name, w, http.StatusOK, ctx)
}

func (a *App) renderStatus(name string, w http.ResponseWriter, status int, ctx interface{}) {
	buf, err := a.Templates.Exec(name, ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	if err != nil {
		log.Errorf("error writing response: %s", err)
	}
}

// detailsView is a video together with its display date.
type detailsView struct {
	*media.Video
	Published string
}

func (a *App) details(r *http.Request, v *media.Video) *detailsView {
	if v == nil {
		return nil
	}
	return &detailsView{
		Video:     v,
		Published: v.Published(r.Header.Get("Accept-Language"), a.Location),
	}
}

// HTTP handler for GET /
func (a *App) indexHandler(w http.ResponseWriter, r *http.Request) {
	snap := lookup.NewForm().Snapshot()
	if form := a.Sessions.Lookup(r); form != nil {
		snap = form.Render()
	}
	ctx := &struct {
		Form    lookup.Snapshot
		Details *detailsView
	}{
		Form:    snap,
		Details: a.details(r, snap.Details),
	}
	a.render("index", w, ctx)
}

// HTTP handler for POST /
func (a *App) submitHandler(w http.ResponseWriter, r *http.Request) {
	if !a.Limiter.Allow(clientIP(r)) {
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}
	if err := r.ParseForm(); err != nil {
		err := fmt.Errorf("error processing form: %w", err)
		log.Error(err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := a.Sessions.Form(w, r)
	if run := a.Lookup.Submit(form, r.PostFormValue("url")); run != nil {
		a.inflight.Add(1)
		go func() {
			defer a.inflight.Done()
			run(context.Background())
		}()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HTTP handler for POST /dismiss
func (a *App) dismissHandler(w http.ResponseWriter, r *http.Request) {
	if form := a.Sessions.Lookup(r); form != nil {
		form.Dismiss()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HTTP handler for /v/id
func (a *App) pageHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log.Debugf("/v/%s", id)

	ctx := &struct {
		ID      string
		Message string
		Details *detailsView
	}{ID: id}

	if !lookup.ValidID(id) {
		ctx.Message = "Invalid YouTube video id."
		a.renderStatus("video", w, http.StatusNotFound, ctx)
		return
	}

	res := a.Lookup.Fetch(r.Context(), lookup.VideoID(id))
	status := http.StatusOK
	switch res.Outcome {
	case lookup.OutcomeFound:
		ctx.Details = a.details(r, &res.Video)
	case lookup.OutcomeEmpty:
		ctx.Message = "Video not found"
		status = http.StatusNotFound
	default:
		log.Errorf("error fetching video %s: %s", id, res.Err)
		ctx.Message = "An error occurred"
		status = http.StatusBadGateway
	}
	a.renderStatus("video", w, status, ctx)
}

// HTTP handler for /healthz
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
