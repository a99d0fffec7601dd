package cmd

import (
	"log/slog"

	"trainbot/pkg/assistant"
	"trainbot/pkg/config"
	"trainbot/pkg/railway"
	"trainbot/pkg/validate"
)

// services bundles what the search-related commands need
type services struct {
	secrets   config.Secrets
	validator *validate.Validator
	client    *railway.Client
	pipeline  *assistant.Pipeline
}

// newServices loads secrets and wires the pipeline. A missing schedule key is fatal.
func newServices(polish bool) (*services, error) {
	secrets := config.LoadSecrets()
	if err := secrets.RequireScheduleKey(); err != nil {
		return nil, err
	}

	validator := validate.New(nil)
	client := railway.NewClient(secrets.ScheduleAPIKey, railway.WithHost(secrets.ScheduleAPIHost))

	var finalizer assistant.Finalizer = assistant.PlainFinalizer{}
	if polish {
		if secrets.HasLLM() {
			finalizer = assistant.NewLLMFinalizer(secrets.LLMBaseURL, secrets.LLMAPIKey, secrets.LLMModel)
		} else {
			slog.Warn("--polish given but GROQ_API_KEY is not set, using plain output")
		}
	}

	return &services{
		secrets:   secrets,
		validator: validator,
		client:    client,
		pipeline:  assistant.NewPipeline(client, validator, finalizer),
	}, nil
}
