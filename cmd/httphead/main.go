// Command httphead parses HTTP/1.x message heads and prints them.
//
// Usage:
//
//	httphead [-format json|tokens] [-strict] [-scalar] [file ...]
//
// With no files it reads standard input. The message type is detected from
// the "HTTP/" prefix. In json mode each head is printed as a JSON object; in
// tokens mode the diagnostic token stream is printed instead, which shows
// where an invalid head goes wrong. The exit status is 1 if any input is not
// a complete, valid head.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-json"

	"github.com/shapestone/shape-httphead/internal/tokenizer"
	"github.com/shapestone/shape-httphead/pkg/httphead"
)

var errInvalidInput = errors.New("one or more inputs are invalid")

type config struct {
	format string
	opts   httphead.Options
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("httphead: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, errInvalidInput) {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("httphead", flag.ContinueOnError)
	var cfg config
	fs.StringVar(&cfg.format, "format", "json", "output format: json or tokens")
	fs.BoolVar(&cfg.opts.Strict, "strict", false, "reject blank lines before the start-line")
	fs.BoolVar(&cfg.opts.Scalar, "scalar", false, "disable the vectorized scan")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.format != "json" && cfg.format != "tokens" {
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	files := fs.Args()
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return report(cfg.handle(stdout, "<stdin>", data, false))
	}

	failed := false
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Print(err)
			failed = true
			continue
		}
		if err := cfg.handle(stdout, name, data, len(files) > 1); err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
		}
	}
	if failed {
		return errInvalidInput
	}
	return nil
}

func report(err error) error {
	if err != nil {
		log.Printf("<stdin>: %v", err)
		return errInvalidInput
	}
	return nil
}

// handle prints one input and returns its parse error, if any.
func (c *config) handle(w io.Writer, name string, data []byte, labelled bool) error {
	if labelled {
		fmt.Fprintf(w, "==> %s <==\n", name)
	}
	input := string(data)

	if c.format == "tokens" {
		for _, tok := range tokenizer.Tokenize(input) {
			fmt.Fprintf(w, "%-8s %q\n", tok.Kind(), tok.ValueString())
		}
		return httphead.ValidateWith(input, c.opts)
	}

	node, err := httphead.ParseWith(input, c.opts)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(httphead.NodeToInterface(node), "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
