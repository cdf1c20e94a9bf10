package report

import (
	"fmt"
	"io"

	"sysinfo/internal/config"
	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

type Publisher struct {
	renderer *Renderer
	console  io.Writer
	cfg      *config.Config
	log      logger.Logger
}

func NewPublisher(cfg *config.Config, console io.Writer, log logger.Logger) *Publisher {
	return &Publisher{
		renderer: NewRenderer(),
		console:  console,
		cfg:      cfg,
		log:      log,
	}
}

// Publish renders r once and sends the same bytes to every enabled
// destination. Failures are reported on the console, never returned.
func (p *Publisher) Publish(r domain.Report) {
	log := p.log.With("run_id", r.ID.String())

	data, err := p.renderer.Bytes(r)
	if err != nil {
		log.Error("failed to render report", "error", err)
		fmt.Fprintf(p.console, "Failed to render report: %v\n", err)
		return
	}

	if p.cfg.Console {
		if _, err := p.console.Write(data); err != nil {
			log.Error("failed to write report to console", "error", err)
		}
	}

	if !p.cfg.WriteFile {
		return
	}

	if err := WriteFile(p.cfg.OutputPath, data); err != nil {
		log.Error("failed to write report file", "path", p.cfg.OutputPath, "error", err)
		fmt.Fprintf(p.console, "Failed to write report to %s: %v\n", p.cfg.OutputPath, err)
		return
	}

	log.Info("report written", "path", p.cfg.OutputPath, "bytes", len(data))
}
