// Package constants provides shared constants used throughout the sherlock codebase.
// This includes file permissions, file names, placeholders and limits that
// should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path pattern placeholders
const (
	// LocalePlaceholder is replaced by a locale identifier in the path pattern
	LocalePlaceholder = "{locale}"

	// NamespacePlaceholder is replaced by a namespace name in the path pattern
	NamespacePlaceholder = "{namespace}"
)

// Project configuration file names, in lookup order
var ConfigFileNames = []string{
	".i18n-sherlockrc",
	".i18n-sherlockrc.json",
	".i18n-sherlockrc.yaml",
	".i18n-sherlockrc.yml",
	".i18n-sherlockrc.toml",
	"i18n-sherlock.config.json",
	"i18n-sherlock.config.yaml",
	"i18n-sherlock.config.yml",
	"i18n-sherlock.config.toml",
}

// Output file naming
const (
	// ReportSuffix is appended to the locale for flat JSON exports
	ReportSuffix = "-require-translation.json"

	// XLIFFExtension is the extension of exchange documents
	XLIFFExtension = ".xliff"

	// LocaleFileExtension is the extension of namespace files
	LocaleFileExtension = ".json"
)

// Limit constants
const (
	// MaxConcurrentLoads bounds how many locales are read at once
	MaxConcurrentLoads = 8

	// AllLocales selects every configured target locale
	AllLocales = "all"
)
