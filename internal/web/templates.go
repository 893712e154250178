package web

import (
	"html/template"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// TemplateCache holds parsed templates
type TemplateCache struct {
	cache  map[string]*template.Template
	mu     sync.RWMutex
	funcs  template.FuncMap
	logger *zap.Logger
}

func NewTemplateCache(logger *zap.Logger) *TemplateCache {
	return &TemplateCache{
		cache:  make(map[string]*template.Template),
		funcs:  make(template.FuncMap),
		logger: logger,
	}
}

func (tc *TemplateCache) AddFunc(name string, fn interface{}) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.funcs[name] = fn
}

// Load parses all templates in the templates/ dir
func (tc *TemplateCache) Load(dir string) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return err
	}
	for _, file := range files {
		name := filepath.Base(file)
		tmpl, err := template.New(name).Funcs(tc.funcs).ParseFiles(file)
		if err != nil {
			tc.logger.Error("failed to parse template", zap.String("file", file), zap.Error(err))
			return err
		}
		tc.cache[name] = tmpl
		tc.logger.Debug("cached template", zap.String("name", name))
	}
	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}
