// Package internal contains the SDL plumbing behind the braciole UI
// framework: window and renderer lifecycle, font and texture management,
// theming, logging, and input device handling. Nothing in this package is
// part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
