//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	serverBin  = "./bin/server"
	certgenBin = "./bin/certgen"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server and certgen binaries
func Build() error {
	mg.Deps(goModDownload)
	if err := sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", serverBin, "./cmd"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", certgenBin, "./cmd/certgen")
}

// Run starts server with configs/server.toml
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-server-config", "configs/server.toml")
}

// Cert generates a self-signed certificate into ./cert
func Cert() error {
	mg.Deps(Build)
	return sh.Run(certgenBin, "-out", "cert")
}

// Test runs unit tests
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// E2E runs browser tests, needs a local chrome
func E2E() error {
	return sh.RunV("go", "test", "-tags", "e2e", "-run", "TestBrowser", "./internal/web/...")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
