package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grove-ml/grove"
	"github.com/grove-ml/grove/schema"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput   string
	schemaInput string
	output      string
	maxDepth    int
	maxDBConns  int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a dataset",
		Long:  `Grow a decision tree from a labeled dataset to predict its label column.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			s, err := schema.ReadFromFile(config.schemaInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			tbl, err := config.loadTable(ctx, config.dataInput, s, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			var opts []grove.Option
			if config.maxDepth >= 0 {
				opts = append(opts, grove.WithMaxDepth(config.maxDepth))
			}
			inducer := grove.New(opts...)
			config.Logf("Growing tree from a dataset with %d samples and %d features to predict %s ...", tbl.Rows(), tbl.Columns(), s.Label)
			err = inducer.Fit(tbl.Features(), tbl.Labels())
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			t := inducer.Tree()
			config.Logf("Done")
			config.Logf("%v", t)
			err = outputTree(ctx, config.output, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.schemaInput), "schema", "s", "", "path to a YML file describing the feature columns and label column of the dataset (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file or redis://host:port/name URL to which the grown tree will be written as JSON (defaults to STDOUT)")
	cmd.PersistentFlags().IntVar(&(config.maxDepth), "max-depth", -1, "limit to the depth of the grown tree (defaults to -1: unbounded)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.schemaInput == "" {
		return fmt.Errorf("required schema flag was not set")
	}
	return nil
}
