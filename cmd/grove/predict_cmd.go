package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grove-ml/grove/dataset/csv"
	"github.com/grove-ml/grove/schema"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeInput   string
	dataInput   string
	schemaInput string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Classify samples with a grown tree",
		Long:  `Use a grown tree to predict the class of every sample of an unlabeled dataset, printing one label per sample in input order`,
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
			t, err := loadTree(ctx, config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if t.Columns != len(s.Features) {
				fmt.Fprintf(os.Stderr, "schema declares %d features, tree was grown on %d\n", len(s.Features), t.Columns)
				os.Exit(4)
			}
			features, err := config.featureMatrix(s)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Classifying %d samples...", len(features))
			for _, row := range features {
				label, err := t.Predict(row)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
				fmt.Println(label)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis://host:port/name URL from which the tree will be read (required)")
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to a CSV file with the samples to classify (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.schemaInput), "schema", "s", "", "path to a YML file describing the feature columns of the dataset (required)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if pcc.schemaInput == "" {
		return fmt.Errorf("required schema flag was not set")
	}
	return nil
}

func (pcc *predictCmdConfig) featureMatrix(s *schema.Schema) ([][]float64, error) {
	if pcc.dataInput == "" {
		pcc.Logf("Reading samples from STDIN...")
		return csv.ReadFeatureMatrix(os.Stdin, s)
	}
	pcc.Logf("Opening %s to read samples...", pcc.dataInput)
	f, err := os.Open(pcc.dataInput)
	if err != nil {
		return nil, fmt.Errorf("opening samples at %s: %v", pcc.dataInput, err)
	}
	defer f.Close()
	return csv.ReadFeatureMatrix(f, s)
}
