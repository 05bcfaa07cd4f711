package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Semior001/newspos/app/report"
	"github.com/Semior001/newspos/app/service"
)

// Analyze is a command to analyze a single article and print the report.
type Analyze struct {
	Fetch FetchOpts `group:"fetch" namespace:"fetch" env-namespace:"FETCH"`
	JSON  bool      `long:"json" description:"print the report as json"`

	Args struct {
		URL string `positional-arg-name:"url" description:"article url, asked interactively if omitted"`
	} `positional-args:"yes"`
}

// Execute runs the command.
func (a Analyze) Execute(_ []string) error {
	return a.run(context.Background(), slog.Default(), a.Fetch.service(slog.Default()), os.Stdin, os.Stdout)
}

type analyzer interface {
	Analyze(ctx context.Context, url string) (report.Report, error)
}

func (a Analyze) run(ctx context.Context, lg *slog.Logger, svc analyzer, in io.Reader, out io.Writer) error {
	u := strings.TrimSpace(a.Args.URL)
	if u == "" {
		var err error
		if u, err = prompt(in, out); err != nil {
			return fmt.Errorf("read url: %w", err)
		}
	}

	rep, err := svc.Analyze(ctx, u)
	if err != nil {
		lg.DebugContext(ctx, "article not analyzed", slog.String("url", u), slog.Any("err", err))
		if _, werr := fmt.Fprintln(out, service.UserMessage(err)); werr != nil {
			return fmt.Errorf("write error message: %w", werr)
		}
		return err
	}

	if a.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err = enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	}

	return report.WriteText(out, rep)
}

func prompt(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprint(out, "Enter news article URL: "); err != nil {
		return "", err
	}

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	u := strings.TrimSpace(sc.Text())
	if u == "" {
		return "", errors.New("empty url")
	}

	return u, nil
}
