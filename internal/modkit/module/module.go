// Package module holds cross-module lookups used during bootstrap
package module

import "careerpath/internal/modkit"

// Module is the modkit contract, re-exported so callers need one import
type Module = modkit.Module
