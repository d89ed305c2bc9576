package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/grove-ml/grove/dataset"
	"github.com/grove-ml/grove/dataset/csv"
	"github.com/grove-ml/grove/schema"
)

type splitCmdConfig struct {
	*rootCmdConfig
	dataInput        string
	schemaInput      string
	output           string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a dataset into two datasets",
		Long:  `Randomly split a labeled dataset into an output dataset and a split dataset, for example to set samples aside for testing`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			s, err := schema.ReadFromFile(config.schemaInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			tbl, err := config.table(s)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			seed := config.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			randomizer := rand.New(rand.NewSource(seed))
			kept, split := dataset.Split(tbl, randomizer, config.splitProbability)
			config.Logf("Split %d samples into %d kept and %d split away", tbl.Rows(), kept.Rows(), split.Rows())
			err = config.writeTable(config.output, s, kept)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			f, err := os.Create(config.splitOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			defer f.Close()
			err = csv.WriteTable(f, s, split)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with the dataset to split (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.schemaInput), "schema", "s", "", "path to a YML file describing the feature columns and label column of the dataset (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a CSV file to dump the kept samples to (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.splitOutput), "split-output", "", "path to a CSV file to dump the split-away samples to (required)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "percentage of samples to split away")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random split (defaults to 0: seed from the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.schemaInput == "" {
		return fmt.Errorf("required schema flag was not set")
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability < 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability must be a percentage between 0 and 100")
	}
	return nil
}

func (scc *splitCmdConfig) table(s *schema.Schema) (*dataset.Table, error) {
	if scc.dataInput == "" {
		scc.Logf("Reading dataset from STDIN...")
		return csv.ReadTable(os.Stdin, s)
	}
	scc.Logf("Opening %s to read dataset...", scc.dataInput)
	return csv.ReadTableFromFile(scc.dataInput, s)
}

func (scc *splitCmdConfig) writeTable(output string, s *schema.Schema, tbl *dataset.Table) error {
	var f *os.File
	var err error
	if output == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return csv.WriteTable(f, s, tbl)
}
