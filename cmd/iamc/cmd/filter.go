package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khaeru/iamc-sdmx-demo/schema"
	"github.com/khaeru/iamc-sdmx-demo/structure"
)

var (
	filterSchemaPath string
	filterDimension  string
	filterValues     []string
)

var filterCmd = &cobra.Command{
	Use:   "filter <data.csv>",
	Short: "Filter a wide IAMC data file by dimension value",
	Long: `Read a wide IAMC CSV file and keep only the series matching the given
dimension values, writing the result in long form. Filtering on YEAR keeps
matching observations within each series instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(filterValues) == 0 {
			return fmt.Errorf("at least one --value is required")
		}

		ds, err := readDataset(filterSchemaPath, args[0])
		if err != nil {
			return err
		}

		return ds.Filter(filterDimension, filterValues...).WriteLongCSV(cmd.OutOrStdout())
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterSchemaPath, "schema", "iamc.yaml", "schema document to structure the data by")
	filterCmd.Flags().StringVarP(&filterDimension, "dimension", "d", "MODEL", "dimension role to filter on")
	filterCmd.Flags().StringArrayVarP(&filterValues, "value", "v", nil, "value to keep (repeatable)")
}

// loadStructure loads and validates a schema document and builds its
// data structure definition.
func loadStructure(path string) (*structure.DataStructureDefinition, error) {
	doc, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return structure.New("IAMC", "IAMC data structure", doc)
}
