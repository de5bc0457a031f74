package facetgrid

import (
	"log/slog"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/layout"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithGridConfig overrides the default grid geometry.
func WithGridConfig(cfg models.GridConfig) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger sets the structured logger used for engine warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithAggregation selects the summary-row metric. AggregationOff
// disables the summary row entirely.
func WithAggregation(mode layout.AggregationMode) Option {
	return func(e *Engine) { e.aggMode = mode }
}

// WithExtentDensity controls whether empty cells are shown.
func WithExtentDensity(d layout.ExtentDensity) Option {
	return func(e *Engine) { e.density = d }
}

// WithMaxSortLevels caps the number of prioritized sort levels.
func WithMaxSortLevels(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSortLevels = n
		}
	}
}

// WithRenderer attaches the renderer port. Without one the engine falls
// back to character-count text measurement and discards redraw requests.
func WithRenderer(r RendererPort) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithAxisConfiguration sets the initial axis mapping.
func WithAxisConfiguration(axis models.AxisConfiguration) Option {
	return func(e *Engine) { e.axis = axis }
}
