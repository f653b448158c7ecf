package config

const (
	defaultDiskFormat         = "STL25.01"
	defaultCharacterCodeTable = "00"
	defaultCodePage           = 850
	defaultMaxRowChars        = 40
	defaultMaxRows            = 23
	defaultJustification      = 2
	defaultVerticalPosition   = 20
	defaultLanguageCode       = "0F"
	defaultCatalogDir         = "~/.local/share/stlkit"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			DiskFormat:         defaultDiskFormat,
			CharacterCodeTable: defaultCharacterCodeTable,
			CodePage:           defaultCodePage,
			MaxRowChars:        defaultMaxRowChars,
			MaxRows:            defaultMaxRows,
		},
		Format: Format{
			Justification:    defaultJustification,
			VerticalPosition: defaultVerticalPosition,
		},
		Metadata: Metadata{
			LanguageCode: defaultLanguageCode,
		},
		Catalog: Catalog{
			Enabled: true,
			Dir:     defaultCatalogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
