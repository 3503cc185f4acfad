package render

// Option configures a render sink.
type Option func(*settings)

type settings struct {
	theme     Theme
	showGrid  bool
	showTitle bool
	titleN    uint32
}

func newSettings(opts ...Option) settings {
	s := settings{theme: DefaultTheme(), showGrid: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithTheme replaces the default golden theme.
func WithTheme(t Theme) Option { return func(s *settings) { s.theme = t } }

// WithTitle enables the title overlay naming the current index n.
func WithTitle(n uint32) Option {
	return func(s *settings) { s.showTitle = true; s.titleN = n }
}

// WithoutGrid disables the background grid.
func WithoutGrid() Option { return func(s *settings) { s.showGrid = false } }
