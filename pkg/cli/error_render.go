package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jlrickert/verlaunch/pkg/store"
)

func renderUserError(err error, deps *Deps) string {
	if err == nil {
		return ""
	}

	var writeErr *store.WriteError
	if errors.As(err, &writeErr) {
		if isDebugLogLevel(deps) {
			return writeErr.Error()
		}
		if writeErr.Location != "" {
			return fmt.Sprintf("unable to save preferences to %s; the next run will not remember this one", writeErr.Location)
		}
		return "unable to save preferences; the next run will not remember this one"
	}

	if errors.Is(err, store.ErrUnsupported) {
		return "the registry store is only available on Windows; use --store file"
	}

	return err.Error()
}

func isDebugLogLevel(deps *Deps) bool {
	if deps == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(deps.LogLevel), "debug")
}
