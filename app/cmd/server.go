package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/Semior001/newspos/app/web"
	"github.com/gin-gonic/gin"
)

// Server is a command to run the web interface.
type Server struct {
	Fetch FetchOpts `group:"fetch" namespace:"fetch" env-namespace:"FETCH"`

	Addr    string        `long:"addr" env:"ADDR" default:":8080" description:"address to listen on"`
	Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"1m" description:"timeout for a single analysis"`
}

// Execute runs the command.
func (s Server) Execute(_ []string) error {
	lg := slog.Default()

	if !lg.Enabled(context.Background(), slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &web.Server{
		Addr:    s.Addr,
		Logger:  lg.With(slog.String("prefix", "web")),
		Service: s.Fetch.service(lg),
		Timeout: s.Timeout,
	}

	return runUntilSignal(lg, srv.Run)
}
