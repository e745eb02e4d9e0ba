package registry

var defaultRegistry = New()

// Default returns the registry the stock component packages register into
// from their init functions.
func Default() *Registry {
	return defaultRegistry
}

func RegisterCharFilter(name string, f CharFilterFactory) {
	defaultRegistry.RegisterCharFilter(name, f)
}

func RegisterTokenizer(name string, f TokenizerFactory) {
	defaultRegistry.RegisterTokenizer(name, f)
}

func RegisterTokenFilter(name string, f TokenFilterFactory) {
	defaultRegistry.RegisterTokenFilter(name, f)
}

func RegisterAnalyzer(name string, f AnalyzerFactory) {
	defaultRegistry.RegisterAnalyzer(name, f)
}
