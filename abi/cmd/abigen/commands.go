package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/CaliLuke/go-cqlbridge/abi"
)

type flags struct {
	config    string
	table     string
	out       string
	prefix    string
	tableName string
	namespace string
}

// resolve merges the config file with the flags that were set explicitly.
func (f *flags) resolve(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("table") {
		cfg.Table = f.table
	}
	if set("prefix") {
		cfg.Prefix = f.prefix
	}
	if set("table-name") {
		cfg.TableName = f.tableName
	}
	if set("namespace") {
		cfg.Namespace = f.namespace
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "abigen",
		Short:         "Render the exception constructor table for native hosts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "Path to abigen YAML config")
	pf.StringVar(&f.table, "table", "", "Path to constructor table (default: built-in)")
	pf.StringVar(&f.out, "out", "", "Output file (default: stdout)")
	pf.StringVar(&f.prefix, "prefix", "", "C identifier prefix")
	pf.StringVar(&f.tableName, "table-name", "", "C name of the constructor table struct")
	pf.StringVar(&f.namespace, "namespace", "", "C# namespace")

	root.AddCommand(
		newRenderCmd(f, "c", "Render a C header", abi.RenderC),
		newRenderCmd(f, "csharp", "Render C# delegates and table struct", abi.RenderCSharp),
		newCheckCmd(f),
	)
	return root
}

type renderFunc func(io.Writer, *abi.Table, abi.RenderConfig) error

func newRenderCmd(f *flags, use, short string, render renderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			table, err := cfg.loadTable()
			if err != nil {
				return err
			}
			if f.out == "" {
				return render(cmd.OutOrStdout(), table, cfg.renderConfig())
			}
			return renderFile(f.out, render, table, cfg.renderConfig())
		},
	}
}

// renderFile renders into path. A failed close is reported since it can
// lose written data.
func renderFile(path string, render renderFunc, table *abi.Table, cfg abi.RenderConfig) (rerr error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if err := file.Close(); err != nil && rerr == nil {
			rerr = errors.Wrap(err, "close output")
		}
	}()
	if err := render(file, table, cfg); err != nil {
		return errors.Wrapf(err, "render %s", path)
	}
	return nil
}

func newCheckCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse and validate a constructor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			table, err := cfg.loadTable()
			if err != nil {
				return err
			}
			for _, s := range table.Signatures {
				fmt.Fprintln(cmd.OutOrStdout(), s.String())
			}
			return nil
		},
	}
}
