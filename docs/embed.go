// Copyright © 2026 The qassert authors

// Package docs embeds the qassert user guides for use by the CLI.
package docs

import _ "embed"

//go:embed sources.md
var SourcesGuide string
