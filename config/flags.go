package config

import "github.com/spf13/pflag"

// RegisterFlags binds the compiler's global flags onto fs, with their
// defaults taken from Default, and returns the Flags they write into;
// call its Config method after fs.Parse to read the values the user
// actually passed.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	d := Default()
	f := &Flags{}
	fs.StringVar(&f.stdlibRoot, "stdlib-root", d.StdlibRoot, "standard-library source root (recorded in the configuration; import resolution does not read it)")
	fs.StringVar(&f.devOverrideRoot, "dev-override-root", "", "working copy of the standard library (recorded in the configuration; import resolution does not read it)")
	fs.StringVar(&f.format, "format", d.Format, "diagnostic output format: text or json")
	return f
}

// Flags holds the addresses pflag writes into; call Config() after
// parsing to get an immutable snapshot.
type Flags struct {
	stdlibRoot      string
	devOverrideRoot string
	format          string
}

// Config returns a Config reflecting the current flag values.
func (f *Flags) Config() Config {
	return Config{
		StdlibRoot:      f.stdlibRoot,
		DevOverrideRoot: f.devOverrideRoot,
		Format:          f.format,
	}
}
