package logx

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/requester/middleware"
	"github.com/samber/lo"
)

// RoundTripperOpts contains options for client logger.
type RoundTripperOpts struct {
	Level         slog.Level
	SecretHeaders []string
	// WithBody enables logging of the first bytes of response body.
	WithBody bool
}

// LoggingRoundTripper logs every client request.
func LoggingRoundTripper(lg *slog.Logger, opts RoundTripperOpts) middleware.RoundTripperHandler {
	return func(next http.RoundTripper) http.RoundTripper {
		return middleware.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			ctx := req.Context()
			if !lg.Enabled(ctx, opts.Level) {
				return next.RoundTrip(req)
			}

			le := logEntry{}
			le.Request.URL = req.URL.String()
			le.Request.Method = req.Method
			le.Request.Headers = opts.headers(req.Header)

			lg.LogAttrs(ctx, opts.Level, "request sent", slog.Any("request", le.Request))

			start := time.Now()
			resp, err := next.RoundTrip(req)
			le.Elapsed = time.Since(start)

			if err != nil {
				lg.LogAttrs(ctx, opts.Level, "request failed",
					slog.Duration("elapsed", le.Elapsed),
					slog.Any("err", err),
				)
				return resp, err
			}

			le.Response.StatusCode = resp.StatusCode
			le.Response.Headers = opts.headers(resp.Header)
			if opts.WithBody {
				resp.Body, le.Response.ResponseBody = copyAndTrim(resp.Body)
			}

			lg.LogAttrs(ctx, opts.Level, "response received",
				slog.Any("response", le.Response),
				slog.Duration("elapsed", le.Elapsed),
			)

			return resp, nil
		})
	}
}

func (o RoundTripperOpts) headers(h http.Header) map[string]string {
	res := make(map[string]string, len(h))
	for k, vals := range h {
		if lo.Contains(o.SecretHeaders, k) {
			res[k] = "***"
			continue
		}
		res[k] = strings.Join(vals, ",")
	}
	return res
}

type logEntry struct {
	Request struct {
		Method  string
		URL     string
		Headers map[string]string
	}
	Response struct {
		StatusCode   int
		Headers      map[string]string
		ResponseBody string
	}
	Elapsed time.Duration
}

const trimBodyAt = 1024

func copyAndTrim(r io.ReadCloser) (rd io.ReadCloser, result string) {
	if r == nil {
		return nil, ""
	}

	rd, result, read := readPortion(r, trimBodyAt)
	if read == trimBodyAt {
		result = result[:trimBodyAt] + "..."
	}
	result = strings.ReplaceAll(result, "\n", "")
	result = strings.ReplaceAll(result, "\t", "")

	return rd, result
}

func readPortion(src io.ReadCloser, limit int64) (rd io.ReadCloser, portion string, read int64) {
	buf := &bytes.Buffer{}

	read, err := io.CopyN(buf, src, limit)
	if err != nil {
		return &closer{rd: bytes.NewReader(buf.Bytes()), closeFn: src.Close}, buf.String(), read
	}

	return &closer{rd: io.MultiReader(bytes.NewReader(buf.Bytes()), src), closeFn: src.Close}, buf.String(), read
}

type closer struct {
	rd      io.Reader
	closeFn func() error
}

func (c *closer) Read(p []byte) (n int, err error) { return c.rd.Read(p) }
func (c *closer) Close() error                     { return c.closeFn() }
