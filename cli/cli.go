package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dash-savior/robtop"
	"dash-savior/robtop/rcrypt"
	"dash-savior/robtop/rfield"
	"dash-savior/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Decode      *DecodeCmd      `arg:"subcommand:decode"`
		Checksum    *ChecksumCmd    `arg:"subcommand:checksum"`
	}
	InteractiveCmd struct {
		File string `arg:"positional,required" help:"path to a saved search response" placeholder:"search.txt"`
	}
	DecodeCmd struct {
		Kind  string   `arg:"-k,--kind" default:"search" help:"search, level, song, comments or user"`
		Debug bool     `help:"print the decoded fields instead of records"`
		Files []string `arg:"positional,required" help:"paths to saved responses" placeholder:"FILE"`
	}
	ChecksumCmd struct {
		List     bool     `help:"list the known endpoints"`
		Endpoint string   `arg:"positional" help:"endpoint name" placeholder:"ENDPOINT"`
		Params   []string `arg:"positional" help:"request values as key=value" placeholder:"KEY=VALUE"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Decode the game server's delimited responses into JSON,",
			"and compute the checksums its mutating endpoints expect.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// RunDecode decodes every file and keeps going past failures; the returned
// error combines all of them.
func RunDecode(w io.Writer, logger *zap.Logger, cmd DecodeCmd) error {
	kind := robtop.ResponseKind(cmd.Kind)
	if !lo.Contains(robtop.ResponseKinds(), kind) {
		return robtop.ErrUnknownResponseKind{Kind: kind}
	}
	decoder := robtop.NewDecoder(logger)

	var err error
	for _, path := range cmd.Files {
		if !CheckExistence(path) {
			err = multierr.Append(err, errors.Errorf(`RunDecode error: file "%s" does not exist`, path))
			continue
		}
		bs, readErr := os.ReadFile(path)
		if readErr != nil {
			err = multierr.Append(err, errors.Wrapf(readErr, `RunDecode error: reading "%s"`, path))
			continue
		}
		output, decodeErr := decoder.DecodeResponse(kind, bs, cmd.Debug)
		if decodeErr != nil {
			err = multierr.Append(err, errors.Wrapf(decodeErr, `RunDecode error: decoding "%s"`, path))
			continue
		}
		logger.Debug("decoded", zap.String("path", path), zap.String("kind", cmd.Kind))
		if _, writeErr := fmt.Fprintln(w, string(output)); writeErr != nil {
			return multierr.Append(err, writeErr)
		}
	}
	return err
}

// ParseParams reads "key=value" pairs. Values are coerced the same way
// response fields are, which does not change their checksum text.
func ParseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Errorf(`ParseParams error: "%s" is not key=value`, pair)
		}
		params[key] = rfield.CoerceValue(value)
	}
	return params, nil
}

func RunChecksum(w io.Writer, cmd ChecksumCmd) error {
	if cmd.List {
		for _, name := range rcrypt.EndpointNames() {
			endpoint := rcrypt.MustLookupEndpoint(name)
			if _, err := fmt.Fprintf(w, "%s: %s\n", name, strings.Join(endpoint.Fields, ", ")); err != nil {
				return err
			}
		}
		return nil
	}

	endpoint, ok := rcrypt.LookupEndpoint(cmd.Endpoint)
	if !ok {
		return errors.Errorf(`RunChecksum error: unknown endpoint "%s"`, cmd.Endpoint)
	}
	params, err := ParseParams(cmd.Params)
	if err != nil {
		return err
	}
	chk, err := endpoint.Checksum(params)
	if err != nil {
		return errors.Wrap(err, "RunChecksum error")
	}
	_, err = fmt.Fprintln(w, chk)
	return err
}

func StartInteractive(logger *zap.Logger, cmd InteractiveCmd) error {
	bs, err := os.ReadFile(cmd.File)
	if err != nil {
		return errors.Wrap(err, "StartInteractive error")
	}
	response, err := robtop.NewDecoder(logger).DecodeSearchResponse(string(bs))
	if err != nil {
		return errors.Wrap(err, "StartInteractive error")
	}
	return ui.Start(response.Levels)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	config, err := LoadConfig(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := MakeLogger(*config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	switch {
	case args.Decode != nil:
		err = RunDecode(os.Stdout, logger, *args.Decode)
	case args.Checksum != nil:
		err = RunChecksum(os.Stdout, *args.Checksum)
	case args.Interactive != nil:
		err = StartInteractive(logger, *args.Interactive)
	default:
		parser.WriteHelp(os.Stdout)
		return
	}
	if err != nil {
		for _, e := range multierr.Errors(err) {
			logger.Error("command failed", zap.Error(e))
		}
		_ = logger.Sync()
		os.Exit(1)
	}
}
