package exhibit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/five82/exhibit/internal/gemini"
)

// Recorder receives one observation per Generate call.
type Recorder interface {
	ObserveGeneration(outcome string, elapsed time.Duration)
}

// GeneratorConfig wires a Generator.
type GeneratorConfig struct {
	Client     gemini.JSONGenerator
	Credential string
	Logger     *log.Logger
	Recorder   Recorder
	Now        func() time.Time
	NewID      func() string
}

// Generator turns user input into placard data with a single API call.
type Generator struct {
	client     gemini.JSONGenerator
	credential string
	logger     *log.Logger
	recorder   Recorder
	now        func() time.Time
	newID      func() string
}

// NewGenerator builds a Generator from cfg.
func NewGenerator(cfg GeneratorConfig) *Generator {
	g := &Generator{
		client:     cfg.Client,
		credential: cfg.Credential,
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
		now:        cfg.Now,
		newID:      cfg.NewID,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.newID == nil {
		g.newID = func() string { return uuid.NewString() }
	}
	return g
}

// Generate validates the credential and input, performs exactly one API call
// and decodes the reply. There are no retries.
func (g *Generator) Generate(ctx context.Context, in UserInput) (data Data, err error) {
	if g == nil {
		return Data{}, fmt.Errorf("generator is nil")
	}
	start := g.now()
	logger := g.logger.With("request", g.newID())
	defer func() {
		elapsed := g.now().Sub(start)
		outcome := Outcome(err)
		if g.recorder != nil {
			g.recorder.ObserveGeneration(outcome, elapsed)
		}
		if err != nil {
			logger.Warn("generation failed", "outcome", outcome, "elapsed", elapsed, "err", err)
			return
		}
		logger.Info("generation complete", "elapsed", elapsed, "scientific_name", data.ScientificName)
	}()

	if !UsableCredential(g.credential) {
		return Data{}, ErrMissingCredential
	}
	if err := in.Validate(); err != nil {
		return Data{}, err
	}
	if g.client == nil {
		return Data{}, fmt.Errorf("generator client is nil")
	}

	logger.Debug("requesting placard", "name", in.Name)
	text, err := g.client.GenerateJSON(ctx, BuildPrompt(in), ResponseSchema())
	if err != nil {
		return Data{}, err
	}
	data, err = Decode(text)
	if errors.Is(err, ErrMalformedResponse) {
		logger.Debug("malformed response", "text", text)
	}
	return data, err
}
