package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/jtval"
	gjs "github.com/reoring/jtval/engine/gojsonschema"
	"github.com/reoring/jtval/i18n"
	"github.com/reoring/jtval/internal/config"
	"github.com/reoring/jtval/internal/logging"
	"github.com/reoring/jtval/source"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	flags      config.Config // flag values; applied only when set
	cfg        config.Config // effective settings
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "jtval",
		Short: "Validate collections of JSON items against a JSON Schema",
		Long: `jtval compiles a JSON Schema once and checks every item of a JSON, NDJSON or
YAML input against it, reporting valid (normalized) items and failures.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flags.Engine, "engine", "", "validation engine: santhosh or gojsonschema")
	pf.StringVar(&a.flags.Draft, "draft", "", "draft for schemas without $schema (4, 6, 7, 2019-09, 2020-12)")
	pf.BoolVar(&a.flags.AssertFormat, "assert-format", false, "treat \"format\" as an assertion")
	pf.BoolVar(&a.flags.RaiseOnError, "raise", false, "stop at the first invalid item")
	pf.BoolVar(&a.flags.ApplyDefaults, "defaults", true, "apply schema defaults to valid items")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.flags.Lang, "lang", "", "message language: en or ja")

	root.AddCommand(
		newValidateCmd(a),
		newStreamCmd(a),
		newLegacyCmd(a),
		newServeCmd(a),
	)
	return root
}

// load merges the config file with the flags that were set explicitly.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return &exitError{code: exitIO, err: err}
	}
	fs := cmd.Flags()
	if fs.Changed("engine") {
		cfg.Engine = a.flags.Engine
	}
	if fs.Changed("draft") {
		cfg.Draft = a.flags.Draft
	}
	if fs.Changed("assert-format") {
		cfg.AssertFormat = a.flags.AssertFormat
	}
	if fs.Changed("raise") {
		cfg.RaiseOnError = a.flags.RaiseOnError
	}
	if fs.Changed("defaults") {
		cfg.ApplyDefaults = a.flags.ApplyDefaults
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fs.Changed("lang") {
		cfg.Lang = a.flags.Lang
	}
	if fs.Lookup("addr") != nil && fs.Changed("addr") {
		cfg.Addr = a.flags.Addr
	}
	a.cfg = cfg
	a.logger = logging.NewWriter(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))
	i18n.SetLanguage(cfg.Lang)
	return nil
}

// options translates the effective settings into jtval options.
func (a *app) options(obs jtval.Observer) ([]jtval.Option, error) {
	eng, err := engineByName(a.cfg.Engine)
	if err != nil {
		return nil, err
	}
	draft, err := jtval.ParseDraft(a.cfg.Draft)
	if err != nil {
		return nil, err
	}
	opts := []jtval.Option{
		jtval.WithEngine(eng),
		jtval.WithDraft(draft),
		jtval.WithLogger(a.logger),
		jtval.WithObserver(obs),
	}
	if a.cfg.AssertFormat {
		opts = append(opts, jtval.WithAssertFormat())
	}
	if a.cfg.RaiseOnError {
		opts = append(opts, jtval.WithRaiseOnError())
	}
	if !a.cfg.ApplyDefaults {
		opts = append(opts, jtval.WithoutDefaults())
	}
	return opts, nil
}

func engineByName(name string) (jtval.Engine, error) {
	switch strings.ToLower(name) {
	case "", "santhosh", "santhosh-tekuri":
		return jtval.SanthoshEngine(), nil
	case "gojsonschema", "xeipuuv":
		return gjs.Engine(), nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

// compile reads and compiles the schema file.
func (a *app) compile(path string, obs jtval.Observer) (*jtval.Validator, error) {
	schema, err := source.ReadSchema(path)
	if err != nil {
		return nil, &exitError{code: exitIO, err: errors.New(i18n.T(i18n.CodeReadError, map[string]string{
			"path": path, "reason": err.Error(),
		}))}
	}
	opts, err := a.options(obs)
	if err != nil {
		return nil, &exitError{code: exitIO, err: err}
	}
	v, err := jtval.Compile(schema, opts...)
	if err != nil {
		return nil, &exitError{code: exitSchema, err: errors.New(i18n.T(i18n.CodeSchemaError, map[string]string{
			"reason": err.Error(),
		}))}
	}
	return v, nil
}

// openItems opens the data file; callers must Close the returned closer and
// check the reader's Err after consuming its items.
func (a *app) openItems(path string) (*source.Reader, func(), error) {
	r, c, err := source.OpenFile(path)
	if err != nil {
		return nil, nil, &exitError{code: exitIO, err: errors.New(i18n.T(i18n.CodeReadError, map[string]string{
			"path": path, "reason": err.Error(),
		}))}
	}
	return r, func() { _ = c.Close() }, nil
}

// finish maps run errors to exit statuses and prints the summary line.
func (a *app) finish(cmd *cobra.Command, r *source.Reader, path string, valid, invalid int, runErr error) error {
	if runErr != nil {
		if jtval.IsValidation(runErr) {
			return &exitError{code: exitInvalid, err: errors.New(i18n.T(i18n.CodeAborted, map[string]string{
				"reason": runErr.Error(),
			}))}
		}
		return &exitError{code: exitIO, err: runErr}
	}
	if err := r.Err(); err != nil {
		return &exitError{code: exitIO, err: errors.New(i18n.T(i18n.CodeReadError, map[string]string{
			"path": path, "reason": err.Error(),
		}))}
	}
	fmt.Fprintln(cmd.ErrOrStderr(), i18n.T(i18n.CodeSummary, map[string]string{
		"valid":   fmt.Sprint(valid),
		"invalid": fmt.Sprint(invalid),
	}))
	if invalid > 0 {
		return &exitError{code: exitInvalid}
	}
	return nil
}
