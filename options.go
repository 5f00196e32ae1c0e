package rowstore

type options struct {
	degree int
	logger *Logger
}

// Option configures Store constructor behavior.
//
// Options exist to avoid exploding the constructor surface; the zero
// configuration is a fully usable store.
type Option func(*options)

func applyOptions(optFns []Option) options {
	opts := options{
		degree: defaultDegree,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// WithDegree configures the branching degree of the btree backing the row
// table. Larger degrees trade pointer chasing for wider node scans; the
// default suits tables of small rows.
func WithDegree(degree int) Option {
	return func(o *options) {
		if degree > 1 {
			o.degree = degree
		}
	}
}

// WithLogger configures structured logging for store maintenance operations
// (index attachment, deletes). Pass nil to disable logging.
//
// Example:
//
//	store := rowstore.New[string](2,
//	    rowstore.WithLogger(rowstore.NewTextLogger(slog.LevelDebug)),
//	)
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
