package genconfig

// Message constants
const (
	MsgShort = "Write a starter configuration file"
	MsgLong  = `Writes the effective configuration (defaults merged with any existing
overrides) to the user config location, so the settings can be edited.

Fails rather than overwrite an existing file.`

	MsgExample = `  # Write to $XDG_CONFIG_HOME/relink/relink.toml
  relink genconfig

  # Write somewhere else
  relink genconfig --output ./relink.toml`
)
