// Package config turns raw process arguments and environment into the
// search configuration, and loads optional user settings from YAML.
package config

import (
	"errors"
	"fmt"
)

// EnvCaseInsensitive is the environment variable whose presence switches
// searching to case-insensitive mode. Its value is ignored.
const EnvCaseInsensitive = "CASE_INSENSITIVE"

// ErrMissingArgument is matched by every MissingArgumentError.
var ErrMissingArgument = errors.New("missing argument")

// MissingArgumentError reports which positional argument was not supplied.
type MissingArgumentError struct {
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("didn't get a %s string", e.Argument)
}

// Is lets errors.Is(err, ErrMissingArgument) match.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// LookupFunc reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config is the validated search request. Query and Filename are never empty.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// Build creates a Config from process arguments.
// args[0] is the program name; args[1] and args[2] are the query and the
// filename. Additional arguments are ignored. The file is not checked.
func Build(args []string, lookup LookupFunc) (*Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	query, ok := positional(args, 0)
	if !ok {
		return nil, &MissingArgumentError{Argument: "query"}
	}
	filename, ok := positional(args, 1)
	if !ok {
		return nil, &MissingArgumentError{Argument: "filename"}
	}

	caseSensitive := true
	if lookup != nil {
		if _, set := lookup(EnvCaseInsensitive); set {
			caseSensitive = false
		}
	}

	return &Config{
		Query:         query,
		Filename:      filename,
		CaseSensitive: caseSensitive,
	}, nil
}

// positional returns args[i] if present and non-empty.
func positional(args []string, i int) (string, bool) {
	if i >= len(args) || args[i] == "" {
		return "", false
	}
	return args[i], true
}
