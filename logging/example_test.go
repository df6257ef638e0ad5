package logging_test

import (
	"github.com/grovetools/agentschema/logging"
	"github.com/sirupsen/logrus"
)

func ExampleNewLogger() {
	log := logging.NewLogger("my-component")

	log.Debug("Debug information")
	log.Info("Starting export")

	log.WithFields(logrus.Fields{
		"schema": "ActionLog",
		"bytes":  512,
	}).Info("Wrote schema")
}

func ExampleNewLogger_configuration() {
	// Configuration via agentschema.yml:
	//
	// logging:
	//   level: debug              # Set log level
	//   report_caller: true       # Include file/line info
	//   file:
	//     enabled: true
	//     path: ~/.local/state/agentschema/agentschema.log
	//   format:
	//     preset: json            # default, simple or json
	//     structured_to_stderr: always
	//
	// Environment variables take precedence:
	// AGENTSCHEMA_LOG_LEVEL=debug
	// AGENTSCHEMA_LOG_CALLER=true
	log := logging.NewLogger("configured")
	log.Info("Configured from agentschema.yml")
}
