package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/khaeru/iamc-sdmx-demo/dataset"
)

var (
	convertSchemaPath string
	convertOutput     string
)

var convertCmd = &cobra.Command{
	Use:   "convert <data.csv>",
	Short: "Convert a wide IAMC data file to long form",
	Long: `Read a wide IAMC CSV file (model, scenario, region, variable, unit, and
year columns), resolve every variable against the schema's code hierarchy,
and write the data in long form with one row per observation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := readDataset(convertSchemaPath, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if convertOutput != "" {
			f, err := os.Create(convertOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return ds.WriteLongCSV(out)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertSchemaPath, "schema", "iamc.yaml", "schema document to structure the data by")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write to a file instead of stdout")
}

// readDataset loads a schema, builds its data structure, and reads a wide
// data file against it.
func readDataset(schemaPath, dataPath string) (*dataset.DataSet, error) {
	dsd, err := loadStructure(schemaPath)
	if err != nil {
		return nil, err
	}
	return dataset.ReadCSVFile(dataPath, dsd)
}
