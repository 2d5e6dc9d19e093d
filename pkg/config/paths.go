package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// PrimaryFile is the default primary document name.
	PrimaryFile = "config.yml"

	// OverridesFile is the default message override document name.
	OverridesFile = "messages.yml"

	primaryKey   = "config"
	overridesKey = "messages"
)

// Paths holds the locations of the two documents.
type Paths struct {
	Primary   string
	Overrides string
}

// PathResolver resolves document locations.
// Priority: Flag > ENV > XDG default
type PathResolver struct {
	appName string
	v       *viper.Viper
}

// NewPathResolver creates a resolver for appName. Environment variables are
// read as <APPNAME>_CONFIG and <APPNAME>_MESSAGES.
func NewPathResolver(appName string) *PathResolver {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(strings.ReplaceAll(appName, "-", "_")))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	dir := filepath.Join(xdg.ConfigHome, appName)
	v.SetDefault(primaryKey, filepath.Join(dir, PrimaryFile))
	v.SetDefault(overridesKey, filepath.Join(dir, OverridesFile))

	return &PathResolver{
		appName: appName,
		v:       v,
	}
}

// AddFlags registers --config and --messages on fs and binds them.
func (r *PathResolver) AddFlags(fs *pflag.FlagSet) error {
	fs.String(primaryKey, "", "Path to the settings document")
	fs.String(overridesKey, "", "Path to the messages document")

	for _, key := range []string{primaryKey, overridesKey} {
		if err := r.v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Resolve returns the document locations.
func (r *PathResolver) Resolve() Paths {
	return Paths{
		Primary:   r.v.GetString(primaryKey),
		Overrides: r.v.GetString(overridesKey),
	}
}

// Dir returns the default directory holding both documents.
func (r *PathResolver) Dir() string {
	return filepath.Join(xdg.ConfigHome, r.appName)
}

// EnsureDir creates the directory of the primary document.
func (r *PathResolver) EnsureDir() error {
	dir := filepath.Dir(r.Resolve().Primary)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
