package app

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

type templateMap map[string]*template.Template

// templateSource returns the contents of a named template file.
// *rice.Box satisfies it.
type templateSource interface {
	String(name string) (string, error)
}

// dirSource reads templates from a directory on disk.
type dirSource string

func (d dirSource) String(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(string(d), name))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// pages maps each page to the files it is parsed from. base.html comes
// first so that pages can override its blocks.
var pages = map[string][]string{
	"index": {"base.html", "details.html", "index.html"},
	"video": {"base.html", "details.html", "video.html"},
}

func parseTemplates(src templateSource) (templateMap, error) {
	m := make(templateMap)
	for name, files := range pages {
		t := template.New(name)
		for _, fn := range files {
			s, err := src.String(fn)
			if err != nil {
				return nil, fmt.Errorf("error reading template %s: %w", fn, err)
			}
			if _, err := t.Parse(s); err != nil {
				return nil, fmt.Errorf("error parsing template %s: %w", fn, err)
			}
		}
		m[name] = t
	}
	return m, nil
}

type templateStore struct {
	sync.Mutex

	base      string
	templates templateMap
}

func newTemplateStore(base string) *templateStore {
	return &templateStore{
		base:      base,
		templates: make(templateMap),
	}
}

// Replace swaps all templates at once.
func (t *templateStore) Replace(templates templateMap) {
	t.Lock()
	defer t.Unlock()

	t.templates = templates
}

func (t *templateStore) Exec(name string, ctx interface{}) (io.WriterTo, error) {
	t.Lock()
	defer t.Unlock()

	template, ok := t.templates[name]
	if !ok {
		log.Errorf("template %s not found", name)
		return nil, fmt.Errorf("no such template: %s", name)
	}

	buf := bytes.NewBuffer([]byte{})
	err := template.ExecuteTemplate(buf, t.base, ctx)
	if err != nil {
		log.Errorf("error executing template %s: %s", name, err)
		return nil, err
	}

	return buf, nil
}
