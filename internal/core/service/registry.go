package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
	"github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

// HandlerRegistry maps resource-type identifiers to the handler responsible
// for them. It is populated explicitly at startup and read-only afterwards.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[domain.ResourceType]ports.ResourceHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[domain.ResourceType]ports.ResourceHandler),
	}
}

func (r *HandlerRegistry) Register(handler ports.ResourceHandler) error {
	if handler == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil resource handler")
	}
	resourceType := handler.Type()
	if resourceType == "" {
		return errors.New(errors.CodeInternal, "resource handler type cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[resourceType]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("resource handler for type '%s' already registered", resourceType))
	}
	r.handlers[resourceType] = handler
	return nil
}

// Get returns the handler bound to resourceType. An unknown type is a
// configuration error listing the supported types.
func (r *HandlerRegistry) Get(resourceType domain.ResourceType) (ports.ResourceHandler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, exists := r.handlers[resourceType]
	if !exists {
		suggestion := "No resource handlers are registered."
		if supported := r.supportedLocked(); len(supported) > 0 {
			suggestion = fmt.Sprintf("Supported types: %s", strings.Join(supported, ", "))
		}
		return nil, errors.NewUserFacing(
			errors.CodeConfigValidation,
			fmt.Sprintf("unsupported resource type: %s", resourceType),
			suggestion,
		)
	}
	return handler, nil
}

// SupportedTypes lists registered resource types in stable order.
func (r *HandlerRegistry) SupportedTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.supportedLocked()
}

func (r *HandlerRegistry) supportedLocked() []string {
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t.String())
	}
	sort.Strings(types)
	return types
}
