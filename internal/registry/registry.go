package registry

import (
	"fmt"
	"sort"

	cfg "github.com/thomas-vilte/cz-mate/internal/config"
	domainErrors "github.com/thomas-vilte/cz-mate/internal/domain/errors"
	"github.com/thomas-vilte/cz-mate/internal/domain/ports"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
)

// ConventionFactory builds a rule set bound to the current configuration
// and translations.
type ConventionFactory interface {
	CreateConvention(t *i18n.Translations, cfg *cfg.Config) ports.Convention
}

// Registry is the discovery point of the plugin contract: the host looks
// conventions up by their registered name.
type Registry struct {
	factories map[string]ConventionFactory
	config    *cfg.Config
	t         *i18n.Translations
}

func NewRegistry(cfg *cfg.Config, t *i18n.Translations) *Registry {
	return &Registry{
		factories: make(map[string]ConventionFactory),
		config:    cfg,
		t:         t,
	}
}

func (r *Registry) Register(name string, factory ConventionFactory) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf(r.t.GetMessage("convention_already_registered", 0, map[string]interface{}{
			"Name": name,
		}))
	}
	r.factories[name] = factory
	return nil
}

// Get builds the convention registered under name.
func (r *Registry) Get(name string) (ports.Convention, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, domainErrors.NewConventionNotFoundError(name)
	}
	return factory.CreateConvention(r.t, r.config), nil
}

// Names lists the registered conventions in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
