package fraccalc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type hyphenopt bool

// parsectx holds general data for parsing.
type parsectx struct {
	// hyphen indicates that a hyphen may join the whole and fractional parts
	// of a mixed number, as in 1-3/8.
	hyphen bool
}

// HyphenMixed sets whether "1-3/8" is read as the mixed number 1 3/8 rather
// than the difference 1 - 3/8. The default is false.
func HyphenMixed(on bool) ParseOption {
	return hyphenopt(on)
}

func (o hyphenopt) parseOption(p parsectx) parsectx {
	p.hyphen = bool(o)
	return p
}

type settingsopt Settings

// WithSettings applies the parsing-related fields of s.
func WithSettings(s Settings) ParseOption {
	return settingsopt(s)
}

func (o settingsopt) parseOption(p parsectx) parsectx {
	p.hyphen = o.HyphenMixed
	return p
}
