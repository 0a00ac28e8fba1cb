//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep the generators run by
// `go generate` (mockgen for mocks/, swag for docs/) pinned in go.mod.
package review_verify

import (
	_ "github.com/swaggo/swag/cmd/swag"
	_ "go.uber.org/mock/mockgen"
)
