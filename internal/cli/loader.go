package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/witbench/witbench/internal/catalog"
	"github.com/witbench/witbench/internal/compiler"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeNotFound      = "E002" // Path not found or unreadable
	ErrCodeBadFormat     = "E003" // Unrecognized file extension
	ErrCodeDecodeFailed  = "E004" // Metadata decode/compile failure
	ErrCodeUnknownExport = "E101" // Function not exported by the component
	ErrCodeEncodeFailed  = "E102" // Payload encoding failure
	ErrCodeStoreFailed   = "E103" // Invocation log failure
)

// LoadError represents an error that occurred while loading component metadata.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadComponent reads component metadata from a file, dispatching on the
// extension: .json and .yaml/.yml are decoded wire metadata, .cue is a
// native interface document.
func LoadComponent(path string) (catalog.Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Component{}, &LoadError{
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("reading %s: %v", path, err),
		}
	}

	var c catalog.Component
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		c, err = catalog.DecodeComponentJSON(data)
	case ".yaml", ".yml":
		c, err = catalog.DecodeComponentYAML(data)
	case ".cue":
		c, err = compiler.CompileComponentBytes(data, path)
	default:
		return catalog.Component{}, &LoadError{
			Code:    ErrCodeBadFormat,
			Message: fmt.Sprintf("unrecognized metadata format %q (want .json, .yaml, .yml, or .cue)", filepath.Ext(path)),
		}
	}
	if err != nil {
		return catalog.Component{}, &LoadError{
			Code:    ErrCodeDecodeFailed,
			Message: fmt.Sprintf("decoding %s: %v", path, err),
		}
	}

	return c, nil
}

// lookupExport resolves a function name on a component, wrapping the
// not-found case in a LoadError for uniform CLI reporting.
func lookupExport(c catalog.Component, name string) (catalog.Function, error) {
	fn, ok := c.Export(name)
	if !ok {
		return catalog.Function{}, &LoadError{
			Code:    ErrCodeUnknownExport,
			Message: fmt.Sprintf("component %q does not export %q", c.Name, name),
		}
	}
	return fn, nil
}

// reportError prints err through the formatter and converts it to an
// ExitError carrying the right exit code.
func reportError(formatter *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	exitCode := ExitFailure

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		code = loadErr.Code
		switch code {
		case ErrCodeNotFound, ErrCodeBadFormat, ErrCodeDecodeFailed:
			exitCode = ExitCommandError
		}
	}

	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(exitCode, err.Error(), nil)
}
