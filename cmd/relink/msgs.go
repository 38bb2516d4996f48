package main

// Message constants
const (
	MsgShort = "Relocate directories and leave links behind"
	MsgLong  = `relink moves every immediate subdirectory of SOURCE into TARGET and
creates a directory link at each original path, so software that references
the old locations keeps working.

Directories that already exist under TARGET are skipped, which makes
repeated runs safe: re-running after an interruption picks up exactly
where the previous run stopped.

Individual files under SOURCE are never touched, and discovery never
recurses below the first level.`

	MsgExample = `  # Move every directory under /data/apps to /bulk/apps, linking back
  relink /data/apps /bulk/apps

  # Same, with named arguments in either order
  relink --target /bulk/apps --source /data/apps

  # Preview without touching anything
  relink --dry-run /data/apps /bulk/apps

  # Leave some directories in place
  relink --exclude 'cache*' --exclude tmp /data/apps /bulk/apps

  # Machine-readable report
  relink --format json /data/apps /bulk/apps`
)
