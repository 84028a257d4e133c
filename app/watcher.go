package app

import (
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// startWatcher reloads templates from disk whenever a file in the
// template directory changes. It returns when the watcher is closed.
func startWatcher(a *App) {
	src := dirSource(a.Config.Server.TemplatePath)
	for {
		select {
		case e, ok := <-a.Watcher.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("template change: %s", e)
			tm, err := parseTemplates(src)
			if err != nil {
				log.Errorf("error reloading templates: %s", err)
				continue
			}
			a.Templates.Replace(tm)
			log.Info("templates reloaded")
		case err, ok := <-a.Watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watcher error: %s", err)
		}
	}
}
