//go:build tools
// +build tools

// Package tools фиксирует версии генераторов и утилит в go.mod:
// wire (internal/app), oapi-codegen (internal/generated/dto), mockgen (contract.go),
// goose (migrations), hey для нагрузочного прогона /dispatches.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/rakyll/hey"
	_ "github.com/wadey/gocovmerge"
	_ "go.uber.org/mock/mockgen"
	_ "mvdan.cc/gofumpt"
)
