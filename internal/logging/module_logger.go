package logging

import (
	"context"

	"github.com/goliatone/go-scribe/pkg/interfaces"
)

const (
	rootModule       = "scribe"
	generationModule = "scribe.generation"
	richtextModule   = "scribe.richtext"
	storageModule    = "scribe.storage"
	providerModule   = "scribe.provider"
	commandsModule   = "scribe.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so downstream entries can be filtered
// predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// GenerationLogger returns the logger namespace reserved for the generation
// orchestrator and readiness poller.
func GenerationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generationModule)
}

// RichtextLogger returns the logger namespace reserved for parsing helpers.
func RichtextLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, richtextModule)
}

// StorageLogger returns the logger namespace reserved for repositories.
func StorageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storageModule)
}

// ProviderLogger returns the logger namespace reserved for external
// generation and index adapters.
func ProviderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, providerModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithJobContext enriches the provided logger with the common generation
// fields. Empty values are ignored.
func WithJobContext(logger interfaces.Logger, jobID, indexID string) interfaces.Logger {
	fields := map[string]any{}
	if jobID != "" {
		fields["job_id"] = jobID
	}
	if indexID != "" {
		fields["index_id"] = indexID
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
