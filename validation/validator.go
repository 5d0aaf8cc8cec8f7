package validation

import (
	"log/slog"

	"github.com/eugenedong/arch-as-code/au"
	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/errors"
)

type options struct {
	logger *slog.Logger
	rules  []Rule
}

// Option is a functional option for configuring Validate.
type Option func(*options)

// WithLogger sends per-rule diagnostics to logger.
// If logger is nil, diagnostics are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithRules replaces the default rule set.
func WithRules(rules ...Rule) Option {
	return func(opts *options) {
		opts.rules = rules
	}
}

// Validate runs every rule against update, the current architecture and the
// base architecture. Rule violations are returned in the Result; the error is
// reserved for malformed input, such as a nil document or an architecture
// that reuses an id.
func Validate(update *au.ArchitectureUpdate, current, base *c4.Model, opts ...Option) (*Result, error) {
	o := &options{rules: DefaultRules()}
	for _, opt := range opts {
		opt(o)
	}

	if update == nil {
		return nil, errors.New(errors.CodeInvalidInput, "architecture update is required")
	}

	currentIx, err := c4.NewIndex(current)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid current architecture")
	}
	baseIx, err := c4.NewIndex(base)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid base architecture")
	}

	ctx := NewContext(update, currentIx, baseIx)
	result := &Result{}
	for _, rule := range o.rules {
		found := rule.Check(ctx)
		for _, e := range found {
			e.Stage = rule.Stage()
			e.Rule = rule.Name()
			result.errors = append(result.errors, e)
		}
		if o.logger != nil {
			o.logger.Debug("validation rule evaluated",
				slog.String("rule", rule.Name()),
				slog.String("stage", rule.Stage().String()),
				slog.Int("errors", len(found)),
			)
		}
	}

	return result, nil
}
