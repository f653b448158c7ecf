package config

import (
	"errors"
	"fmt"

	"stlkit/internal/stl"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateFormat(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.DiskFormat {
	case string(stl.DiskFormat25), string(stl.DiskFormat30):
	default:
		return fmt.Errorf("output.disk_format must be %q or %q", stl.DiskFormat25, stl.DiskFormat30)
	}
	switch c.Output.CharacterCodeTable {
	case "00", "01", "02", "03", "04":
	default:
		return errors.New(`output.character_code_table must be "00" through "04"`)
	}
	switch stl.CodePageNumber(c.Output.CodePage) {
	case stl.CodePage437, stl.CodePage850, stl.CodePage860, stl.CodePage863, stl.CodePage865:
	default:
		return errors.New("output.code_page must be one of 437, 850, 860, 863, 865")
	}
	if c.Output.MaxRowChars < 1 || c.Output.MaxRowChars > 99 {
		return errors.New("output.max_row_chars must be between 1 and 99")
	}
	if c.Output.MaxRows < 1 || c.Output.MaxRows > 99 {
		return errors.New("output.max_rows must be between 1 and 99")
	}
	return nil
}

func (c *Config) validateFormat() error {
	if c.Format.Justification < 0 || c.Format.Justification > 3 {
		return errors.New("format.justification must be between 0 and 3")
	}
	if c.Format.VerticalPosition < 0 || c.Format.VerticalPosition > 99 {
		return errors.New("format.vertical_position must be between 0 and 99")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not recognized", c.Logging.Level)
	}
	return nil
}

// STLOptions translates the output and format sections into the
// concrete codec types used by conversions.
func (c *Config) STLOptions() (stl.DiskFormatCode, stl.CharacterCodeTable, stl.CodePageNumber) {
	table := stl.TableLatin
	if len(c.Output.CharacterCodeTable) == 2 {
		table = stl.CharacterCodeTable(c.Output.CharacterCodeTable[1])
	}
	return stl.DiskFormatCode(c.Output.DiskFormat), table, stl.CodePageNumber(c.Output.CodePage)
}
